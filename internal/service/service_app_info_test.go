package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/models"
)

func TestAppInfoService(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.0", "2026-10-01", "abc123")

	tests := []struct {
		name        string
		cfg         config.ClientConfig
		wantStorage string
		wantSummary bool
	}{
		{
			name: "sqlite with summarizer",
			cfg: config.ClientConfig{
				Storage: config.ClientStorage{Backend: config.BackendSQLite, DSN: "notes.db", Key: "k"},
				Adapter: config.ClientAdapter{SummarizerURL: "http://localhost:3400"},
			},
			wantStorage: `sqlite (notes.db), key "k"`,
			wantSummary: true,
		},
		{
			name: "file backend",
			cfg: config.ClientConfig{
				Storage: config.ClientStorage{Backend: config.BackendFile, FilesDir: "data", Key: "k"},
			},
			wantStorage: `json files in data, key "k"`,
		},
		{
			name: "memory backend",
			cfg: config.ClientConfig{
				Storage: config.ClientStorage{Backend: config.BackendMemory, Key: "k"},
			},
			wantStorage: `memory, key "k"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewAppInfoService(info, &tt.cfg, logger.Nop())

			assert.Equal(t, info, s.BuildInfo(context.Background()))
			assert.Equal(t, tt.wantStorage, s.StorageDescription(context.Background()))
			assert.Equal(t, tt.wantSummary, s.SummarizationEnabled(context.Background()))
		})
	}
}
