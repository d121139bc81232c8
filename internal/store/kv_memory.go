package store

import (
	"context"
	"slices"
	"sync"
)

// memoryKeyValueStorage keeps values in a map. Nothing survives the process.
type memoryKeyValueStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryKeyValueStorage() KeyValueStorage {
	return &memoryKeyValueStorage{values: make(map[string][]byte)}
}

func (m *memoryKeyValueStorage) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

func (m *memoryKeyValueStorage) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = slices.Clone(value)
	return nil
}

func (m *memoryKeyValueStorage) Close() error {
	return nil
}
