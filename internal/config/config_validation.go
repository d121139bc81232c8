// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// maxCanvasSide bounds the canvas so a full-raster undo history stays small.
const maxCanvasSide = 4096

// validate checks source-independent rules on the merged config.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Backend {
	case BackendSQLite:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: empty sqlite dsn", ErrInvalidStorageConfigs)
		}
	case BackendFile:
		if cfg.Storage.FilesDir == "" {
			return fmt.Errorf("%w: empty files dir", ErrInvalidStorageConfigs)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidStorageConfigs, cfg.Storage.Backend)
	}
	if cfg.Storage.Key == "" {
		return fmt.Errorf("%w: empty storage key", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.SummarizerURL != "" {
		u, err := url.Parse(cfg.Adapter.SummarizerURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: summarizer url %q", ErrInvalidAdapterConfigs, cfg.Adapter.SummarizerURL)
		}
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.TrashRetention < 0 {
		return fmt.Errorf("%w: negative trash retention", ErrInvalidWorkerConfigs)
	}
	if cfg.Workers.TrashRetention > 0 && cfg.Workers.TrashSweepInterval <= 0 {
		return fmt.Errorf("%w: trash sweep interval must be positive", ErrInvalidWorkerConfigs)
	}

	if cfg.Canvas.Width <= 0 || cfg.Canvas.Height <= 0 ||
		cfg.Canvas.Width > maxCanvasSide || cfg.Canvas.Height > maxCanvasSide {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalidCanvasConfigs, cfg.Canvas.Width, cfg.Canvas.Height)
	}
	if cfg.Canvas.History < 1 {
		return fmt.Errorf("%w: canvas history must be at least 1", ErrInvalidCanvasConfigs)
	}

	return nil
}
