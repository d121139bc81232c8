// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that starts and stops
// several workers together, and the two workers the client runs: the
// snapshot writer and the trash sweeper.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker and returns immediately; the work happens in
// goroutines owned by the worker. Cancelling ctx or calling Stop ends them.
// Stop blocks until every goroutine started by Run has returned.
//
// Example implementation:
//
//	type MyWorker struct{ wg sync.WaitGroup }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    w.wg.Add(1)
//	    go func() { defer w.wg.Done(); <-ctx.Done() }()
//	}
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// Purger removes trashed notes whose retention has elapsed and reports how
// many were removed.
//
//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock
type Purger interface {
	PurgeExpired(ctx context.Context, now time.Time) int
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}
