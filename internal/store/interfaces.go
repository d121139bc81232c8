// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the note collection.
//
// Two layers live here:
//   - [KeyValueStorage] backends (SQLite, a JSON file directory, memory)
//     that store opaque blobs under string keys;
//   - [NotePersistence], the adapter that maps the whole note collection to
//     one versioned JSON blob under one fixed key.
//
// The adapter never returns errors. Parse, read and write failures are
// logged and handed to an optional failure observer; the in-memory
// collection owned by the note store stays authoritative.
package store

import (
	"context"

	"github.com/MKhiriev/sticky-canvas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage stores opaque values under string keys.
type KeyValueStorage interface {
	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Close releases the underlying resources.
	Close() error
}

// LoadResult is the outcome of [NotePersistence.Load].
type LoadResult struct {
	// Notes is never nil. It is empty when nothing could be loaded.
	Notes []models.Note

	// Found reports whether the key held a value, readable or not. A store
	// that has never been written reports false.
	Found bool
}

// NotePersistence maps the note collection to a single stored snapshot.
type NotePersistence interface {
	// Load reads the snapshot. It never fails: an absent key yields an
	// empty result, a malformed or unreadable snapshot yields an empty
	// collection with Found set.
	Load(ctx context.Context) LoadResult

	// Save overwrites the snapshot with notes. Write failures are logged
	// and observed but never returned.
	Save(ctx context.Context, notes []models.Note)
}
