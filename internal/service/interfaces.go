// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the note store: the in-memory, ordered note
// collection that the UI reads and mutates.
//
// Every mutation runs under one mutex, is checked by the lifecycle policy
// and the note validator, and then hands a full copy of the collection to
// the persistence adapter. Persistence is best-effort: a failed write never
// rolls back the in-memory change.
package service

import (
	"context"
	"iter"
	"time"

	"github.com/MKhiriev/sticky-canvas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService owns the note collection.
type NoteService interface {
	// Load replaces the collection with the stored snapshot. When nothing has
	// ever been stored and welcome notes are enabled, the welcome notes are
	// created and saved instead.
	Load(ctx context.Context)

	// Create adds a new active note built from draft to the front of the
	// collection. Only draft validation can make it fail.
	Create(ctx context.Context, draft models.NoteDraft) (models.Note, error)

	// Update merges upd into the active note id and refreshes UpdatedAt.
	// Returns ErrNoteNotFound, lifecycle.ErrNoteNotEditable or a
	// validators.ErrInvalidNote error.
	Update(ctx context.Context, id string, upd models.NoteUpdate) (models.Note, error)

	// Transition applies a lifecycle action. It returns nil after
	// ActionDeletePermanently, the transitioned note otherwise.
	Transition(ctx context.Context, id string, action models.LifecycleAction) (*models.Note, error)

	// List yields the notes that match filter, in collection order, from a
	// snapshot taken when List is called.
	List(ctx context.Context, filter models.NoteFilter) iter.Seq[models.Note]

	// Get returns a copy of the note id or ErrNoteNotFound.
	Get(ctx context.Context, id string) (models.Note, error)

	// Active, Archived and Trashed return the ordered status views.
	Active(ctx context.Context) []models.Note
	Archived(ctx context.Context) []models.Note
	Trashed(ctx context.Context) []models.Note

	// Tags returns every distinct tag in use, ordered by name.
	Tags(ctx context.Context) []models.Tag

	// Summarize checks synchronously that note id can be summarized, then
	// calls the summarization service in the background. The returned
	// channel receives exactly one value (nil on success) and is closed.
	Summarize(ctx context.Context, id string) (<-chan error, error)

	// PurgeExpired permanently removes trashed notes whose retention has
	// elapsed at now and returns how many were removed.
	PurgeExpired(ctx context.Context, now time.Time) int
}

// AppInfoService reports build and runtime information for the settings
// screen.
type AppInfoService interface {
	BuildInfo(ctx context.Context) models.AppBuildInfo
	StorageDescription(ctx context.Context) string
	SummarizationEnabled(ctx context.Context) bool
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// IDGenerator produces unique note and tag identifiers.
type IDGenerator interface {
	Generate() string
}
