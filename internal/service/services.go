package service

import (
	"github.com/MKhiriev/sticky-canvas/internal/adapter"
	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/store"
	"github.com/MKhiriev/sticky-canvas/models"
)

type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(
	persistence store.NotePersistence,
	summarizer adapter.Summarizer,
	cfg *config.ClientConfig,
	buildInfo models.AppBuildInfo,
	log *logger.Logger,
) *Services {
	return &Services{
		NoteService: NewNoteService(persistence, summarizer, log,
			WithWelcomeNotes(cfg.App.SeedWelcomeNotes),
			WithTrashRetention(cfg.Workers.TrashRetention),
		),
		AppInfoService: NewAppInfoService(buildInfo, cfg, log),
	}
}
