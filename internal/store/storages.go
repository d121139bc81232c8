package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
)

// NewKeyValueStorage opens the backend selected by cfg.Backend. For SQLite
// it opens (or creates) the database file and runs pending migrations.
func NewKeyValueStorage(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (KeyValueStorage, error) {
	log.Info().Str("backend", cfg.Backend).Msg("creating key-value storage...")

	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteKeyValueStorage(db), nil

	case config.BackendFile:
		return NewFileKeyValueStorage(cfg.FilesDir)

	case config.BackendMemory:
		return NewMemoryKeyValueStorage(), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
}
