package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/utils"
	"github.com/MKhiriev/sticky-canvas/models"
)

// Option configures a [NotePersistence].
type Option func(*notePersistence)

// WithFailureObserver registers fn to receive every swallowed failure. The
// error wraps one of ErrParse, ErrPersistenceRead or ErrPersistenceWrite.
func WithFailureObserver(fn func(error)) Option {
	return func(p *notePersistence) {
		p.observe = fn
	}
}

type notePersistence struct {
	kv     KeyValueStorage
	key    string
	logger *logger.Logger

	observe func(error)

	mu          sync.Mutex
	fingerprint string
}

// NewNotePersistence stores the note collection under key in kv.
func NewNotePersistence(kv KeyValueStorage, key string, log *logger.Logger, opts ...Option) NotePersistence {
	p := &notePersistence{
		kv:     kv,
		key:    key,
		logger: log,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *notePersistence) Load(ctx context.Context) LoadResult {
	data, err := p.kv.Get(ctx, p.key)
	if errors.Is(err, ErrKeyNotFound) {
		p.logger.Debug().
			Str("func", "notePersistence.Load").
			Str("key", p.key).
			Msg("no stored snapshot")
		return LoadResult{Notes: []models.Note{}}
	}
	if err != nil {
		p.fail(fmt.Errorf("%w: %w", ErrPersistenceRead, err), "notePersistence.Load", "failed to read snapshot")
		return LoadResult{Notes: []models.Note{}, Found: true}
	}

	notes, err := decodeSnapshot(data)
	if err != nil {
		p.fail(err, "notePersistence.Load", "stored snapshot is malformed, starting empty")
		return LoadResult{Notes: []models.Note{}, Found: true}
	}

	p.mu.Lock()
	p.fingerprint = utils.Fingerprint(data)
	p.mu.Unlock()

	p.logger.Debug().
		Str("func", "notePersistence.Load").
		Int("notes", len(notes)).
		Msg("snapshot loaded")
	return LoadResult{Notes: notes, Found: true}
}

func (p *notePersistence) Save(ctx context.Context, notes []models.Note) {
	data, err := encodeSnapshot(notes)
	if err != nil {
		p.fail(fmt.Errorf("%w: %w", ErrPersistenceWrite, err), "notePersistence.Save", "failed to encode snapshot")
		return
	}

	fp := utils.Fingerprint(data)
	p.mu.Lock()
	defer p.mu.Unlock()

	if fp == p.fingerprint {
		return
	}

	if err = p.kv.Put(ctx, p.key, data); err != nil {
		p.fail(fmt.Errorf("%w: %w", ErrPersistenceWrite, err), "notePersistence.Save", "failed to write snapshot")
		return
	}
	p.fingerprint = fp
}

func (p *notePersistence) fail(err error, fn, msg string) {
	p.logger.Err(err).Str("func", fn).Str("key", p.key).Msg(msg)
	if p.observe != nil {
		p.observe(err)
	}
}
