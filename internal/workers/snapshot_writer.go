// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/store"
	"github.com/MKhiriev/sticky-canvas/models"
)

// SnapshotWriter is a [store.NotePersistence] whose Save never blocks on
// storage. The most recent snapshot waits in a one-slot mailbox and a
// background goroutine writes it; a snapshot that is still pending when a
// newer one arrives is dropped.
//
// Load goes straight to the wrapped persistence.
type SnapshotWriter struct {
	persistence store.NotePersistence
	logger      *logger.Logger

	mu         sync.Mutex
	pending    []models.Note
	hasPending bool

	// writeMu serializes writes so an older snapshot can never land after
	// a newer one.
	writeMu sync.Mutex

	wake chan struct{}
	stop chan struct{}
	wg   sync.WaitGroup

	baseCtx  context.Context
	started  bool
	stopOnce sync.Once
}

func NewSnapshotWriter(persistence store.NotePersistence, log *logger.Logger) *SnapshotWriter {
	return &SnapshotWriter{
		persistence: persistence,
		logger:      log,
		wake:        make(chan struct{}, 1),
		stop:        make(chan struct{}),
		baseCtx:     log.WithContext(context.Background()),
	}
}

func (w *SnapshotWriter) Load(ctx context.Context) store.LoadResult {
	return w.persistence.Load(ctx)
}

// Save replaces the pending snapshot with notes and returns.
func (w *SnapshotWriter) Save(_ context.Context, notes []models.Note) {
	w.mu.Lock()
	w.pending = notes
	w.hasPending = true
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// Run starts the writer goroutine. Writes outlive the cancellation of ctx
// so that Stop can still flush.
func (w *SnapshotWriter) Run(ctx context.Context) {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.baseCtx = w.logger.WithContext(context.WithoutCancel(ctx))
	w.mu.Unlock()

	w.logger.Info().Msg("snapshot writer started")

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.wake:
				w.Flush()
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			}
		}
	}()
}

// Flush writes the pending snapshot, if any, before returning.
func (w *SnapshotWriter) Flush() {
	w.writeMu.Lock()
	defer w.writeMu.Unlock()

	w.mu.Lock()
	notes, ok := w.pending, w.hasPending
	w.pending, w.hasPending = nil, false
	ctx := w.baseCtx
	w.mu.Unlock()

	if !ok {
		return
	}
	w.persistence.Save(ctx, notes)
}

// Stop ends the writer goroutine and writes whatever is still pending.
func (w *SnapshotWriter) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		w.wg.Wait()
		w.Flush()
		w.logger.Info().Msg("snapshot writer stopped")
	})
}
