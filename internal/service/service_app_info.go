package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo
	cfg       *config.ClientConfig

	logger *logger.Logger
}

func NewAppInfoService(buildInfo models.AppBuildInfo, cfg *config.ClientConfig, logger *logger.Logger) AppInfoService {
	return &appInfoService{
		buildInfo: buildInfo,
		cfg:       cfg,
		logger:    logger,
	}
}

func (s *appInfoService) BuildInfo(context.Context) models.AppBuildInfo {
	return s.buildInfo
}

// StorageDescription names the backend and where it keeps the notes.
func (s *appInfoService) StorageDescription(context.Context) string {
	storage := s.cfg.Storage
	switch storage.Backend {
	case config.BackendSQLite:
		return fmt.Sprintf("sqlite (%s), key %q", storage.DSN, storage.Key)
	case config.BackendFile:
		return fmt.Sprintf("json files in %s, key %q", storage.FilesDir, storage.Key)
	default:
		return fmt.Sprintf("%s, key %q", storage.Backend, storage.Key)
	}
}

func (s *appInfoService) SummarizationEnabled(context.Context) bool {
	return s.cfg.SummarizationEnabled()
}
