package main

import (
	"context"
	"os"

	"github.com/MKhiriev/sticky-canvas/internal/adapter"
	"github.com/MKhiriev/sticky-canvas/internal/client"
	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/service"
	"github.com/MKhiriev/sticky-canvas/internal/store"
	"github.com/MKhiriev/sticky-canvas/internal/tui"
	"github.com/MKhiriev/sticky-canvas/internal/utils"
	"github.com/MKhiriev/sticky-canvas/internal/workers"
	"github.com/MKhiriev/sticky-canvas/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx := context.Background()
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		stderr := logger.NewLogger("sticky-canvas", os.Stderr, "info")
		stderr.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("sticky-canvas", cfg.App.LogFile, cfg.App.LogLevel)
	log.Info().
		Str("version", buildInfo.BuildVersion()).
		Str("date", buildInfo.BuildDate()).
		Str("commit", buildInfo.BuildCommit()).
		Msg("starting sticky-canvas")
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx = log.WithContext(ctx)

	kv, err := store.NewKeyValueStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create key-value storage")
	}

	persistence := store.NewNotePersistence(kv, cfg.Storage.Key, log)
	writer := workers.NewSnapshotWriter(persistence, log)

	summarizer, err := adapter.NewSummarizer(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create summarizer")
	}

	services := service.NewServices(writer, summarizer, cfg, buildInfo, log)

	background := []workers.Worker{writer}
	if cfg.Workers.TrashRetention > 0 {
		background = append(background, workers.NewTrashSweeper(
			services.NoteService, utils.NewSystemClock(), cfg.Workers.TrashSweepInterval, log))
	}

	ui, err := tui.New(services, cfg.Canvas, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, services.NoteService, workers.NewWorkers(background...), kv, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
