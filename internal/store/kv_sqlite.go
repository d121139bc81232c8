package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/sticky-canvas/internal/logger"
)

// sqliteKeyValueStorage keeps values in the kv_store table.
type sqliteKeyValueStorage struct {
	*DB
	now func() time.Time
}

// NewSQLiteKeyValueStorage wraps an open, migrated database.
func NewSQLiteKeyValueStorage(db *DB) KeyValueStorage {
	return &sqliteKeyValueStorage{
		DB:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (s *sqliteKeyValueStorage) Get(ctx context.Context, key string) ([]byte, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStorage.Get").
			Str("key", key).
			Msg("failed to create query")
		return nil, err
	}

	var value []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStorage.Get").
			Str("key", key).
			Msg("failed to read value")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (s *sqliteKeyValueStorage) Put(ctx context.Context, key string, value []byte) error {
	log := logger.FromContext(ctx)

	query, args, err := buildPutValueQuery(key, value, s.now())
	if err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStorage.Put").
			Str("key", key).
			Msg("failed to create query")
		return err
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteKeyValueStorage.Put").
			Str("key", key).
			Int("bytes", len(value)).
			Msg("failed to upsert value")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteKeyValueStorage) Close() error {
	return s.DB.Close()
}
