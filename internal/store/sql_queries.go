package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable           = "kv_store"
	kvKeyColumn       = "storage_key"
	kvValueColumn     = "payload"
	kvUpdatedAtColumn = "updated_at"

	upsertKeyValueSuffix = "ON CONFLICT(" + kvKeyColumn + ") DO UPDATE SET " +
		kvValueColumn + " = excluded." + kvValueColumn + ", " +
		kvUpdatedAtColumn + " = excluded." + kvUpdatedAtColumn
)

// buildGetValueQuery selects the payload stored under key.
func buildGetValueQuery(key string) (string, []any, error) {
	query, args, err := sq.Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildPutValueQuery inserts value under key or replaces the existing row.
func buildPutValueQuery(key string, value []byte, now time.Time) (string, []any, error) {
	query, args, err := sq.Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAtColumn).
		Values(key, value, now).
		Suffix(upsertKeyValueSuffix).
		PlaceholderFormat(sq.Question).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
