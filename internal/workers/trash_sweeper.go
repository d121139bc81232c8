package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/sticky-canvas/internal/logger"
)

// TrashSweeper periodically asks a [Purger] to drop expired trashed notes.
// The first sweep runs as soon as the worker starts.
type TrashSweeper struct {
	purger   Purger
	clock    Clock
	interval time.Duration
	logger   *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewTrashSweeper(purger Purger, clock Clock, interval time.Duration, log *logger.Logger) *TrashSweeper {
	return &TrashSweeper{
		purger:   purger,
		clock:    clock,
		interval: interval,
		logger:   log,
	}
}

func (s *TrashSweeper) Run(ctx context.Context) {
	ctx, s.cancel = context.WithCancel(ctx)
	ctx = s.logger.WithContext(ctx)

	s.logger.Info().Dur("interval", s.interval).Msg("trash sweeper started")

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.sweep(ctx)
		for {
			select {
			case <-ticker.C:
				s.sweep(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

func (s *TrashSweeper) sweep(ctx context.Context) {
	removed := s.purger.PurgeExpired(ctx, s.clock.Now())
	if removed > 0 {
		s.logger.Info().
			Str("func", "TrashSweeper.sweep").
			Int("removed", removed).
			Msg("expired trashed notes purged")
	}
}

func (s *TrashSweeper) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.logger.Info().Msg("trash sweeper stopped")
}
