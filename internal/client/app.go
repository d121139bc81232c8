package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/workers"
)

type App struct {
	ui      UI
	loader  Loader
	workers *workers.Workers
	storage io.Closer
	logger  *logger.Logger
}

// NewApp assembles the runtime. loader runs before the workers start and
// storage is closed after they have stopped; both may be nil.
func NewApp(ui UI, loader Loader, ws *workers.Workers, storage io.Closer, log *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	if ws == nil {
		ws = workers.NewWorkers()
	}

	return &App{ui: ui, loader: loader, workers: ws, storage: storage, logger: log}, nil
}

// Run loads the notes, starts the workers and shows the UI until the user
// quits or a stop signal arrives. Workers are stopped and storage is closed
// on every exit path. ctx carries the app logger for every call below.
func (a *App) Run(ctx context.Context) (err error) {
	ctx, stop := signal.NotifyContext(a.logger.WithContext(ctx),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if a.loader != nil {
		a.loader.Load(ctx)
	}

	a.logger.Info().Msg("starting workers")
	a.workers.Run(ctx)

	defer func() {
		a.logger.Info().Msg("stopping workers")
		a.workers.Stop()

		if a.storage == nil {
			return
		}
		if closeErr := a.storage.Close(); closeErr != nil {
			a.logger.Err(closeErr).Str("func", "App.Run").Msg("error closing storage")
			err = errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
		}
	}()

	if err = a.ui.Run(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("ui exited with error")
		return fmt.Errorf("run ui: %w", err)
	}

	a.logger.Info().Msg("client exited")
	return nil
}

var errNoUI = errors.New("client needs a ui")
