package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/sticky-canvas/internal/adapter"
	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/store"
	"github.com/MKhiriev/sticky-canvas/models"
)

var t0 = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

// stepClock returns t, then t+step, then t+2*step and so on. A zero step
// freezes the clock.
type stepClock struct {
	mu   sync.Mutex
	t    time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.t
	c.t = c.t.Add(c.step)
	return now
}

type seqIDs struct {
	n atomic.Int64
}

func (g *seqIDs) Generate() string {
	return fmt.Sprintf("id-%03d", g.n.Add(1))
}

type testEnv struct {
	svc      *noteService
	kv       store.KeyValueStorage
	failures []error
	mu       sync.Mutex
}

func (e *testEnv) observed() []error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]error(nil), e.failures...)
}

// reload reads what the service has saved through a fresh persistence.
func (e *testEnv) reload(t *testing.T) []models.Note {
	t.Helper()
	return store.NewNotePersistence(e.kv, config.DefaultStorageKey, logger.Nop()).Load(context.Background()).Notes
}

func newTestEnv(t *testing.T, summarizer adapter.Summarizer, opts ...Option) *testEnv {
	t.Helper()
	env := &testEnv{kv: store.NewMemoryKeyValueStorage()}
	p := store.NewNotePersistence(env.kv, config.DefaultStorageKey, logger.Nop(),
		store.WithFailureObserver(func(err error) {
			env.mu.Lock()
			env.failures = append(env.failures, err)
			env.mu.Unlock()
		}))

	base := []Option{
		WithClock(&stepClock{t: t0, step: time.Second}),
		WithIDGenerator(&seqIDs{}),
		WithWelcomeNotes(false),
	}
	env.svc = NewNoteService(p, summarizer, logger.Nop(), append(base, opts...)...).(*noteService)
	return env
}

func ctx() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func textDraft(content string) models.NoteDraft {
	return models.NoteDraft{Type: models.TextNote, Content: content}
}
