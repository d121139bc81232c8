// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lifecycle holds the status state machine of a note.
//
// Every function here is pure: it takes a note by value, never touches
// storage, and reports illegal operations with sentinel errors. The note
// store is the only caller that turns the results into state.
//
//	active   --archive-->           archived
//	active   --trash-->             trashed
//	archived --unarchive-->         active
//	archived --trash-->             trashed
//	trashed  --restore-->           active
//	trashed  --deletePermanently--> (removed)
package lifecycle

import (
	"fmt"
	"time"

	"github.com/MKhiriev/sticky-canvas/models"
)

type transitionKey struct {
	from   models.NoteStatus
	action models.LifecycleAction
}

// transitions maps every legal (status, action) pair to the resulting status.
// deletePermanently has no target status; Apply reports it through removed.
var transitions = map[transitionKey]models.NoteStatus{
	{models.StatusActive, models.ActionArchive}:            models.StatusArchived,
	{models.StatusActive, models.ActionTrash}:              models.StatusTrashed,
	{models.StatusArchived, models.ActionUnarchive}:        models.StatusActive,
	{models.StatusArchived, models.ActionTrash}:            models.StatusTrashed,
	{models.StatusTrashed, models.ActionRestore}:           models.StatusActive,
	{models.StatusTrashed, models.ActionDeletePermanently}: "",
}

var knownActions = map[models.LifecycleAction]struct{}{
	models.ActionArchive:           {},
	models.ActionUnarchive:         {},
	models.ActionTrash:             {},
	models.ActionRestore:           {},
	models.ActionDeletePermanently: {},
}

// Allowed reports whether action may be applied to a note in status from.
func Allowed(from models.NoteStatus, action models.LifecycleAction) bool {
	_, ok := transitions[transitionKey{from, action}]
	return ok
}

// Apply returns the note after action at time now. removed is true when the
// note must be purged from the collection; the returned note is then the
// unchanged input.
//
// The timestamps are set in lockstep with the status and UpdatedAt is moved
// to now. An illegal pair returns ErrInvalidTransition and the input note;
// an unrecognized action also matches ErrUnknownAction.
func Apply(note models.Note, action models.LifecycleAction, now time.Time) (out models.Note, removed bool, err error) {
	if _, ok := knownActions[action]; !ok {
		return note, false, fmt.Errorf("%w: %w: %q", ErrInvalidTransition, ErrUnknownAction, action)
	}

	to, ok := transitions[transitionKey{note.Status, action}]
	if !ok {
		return note, false, fmt.Errorf("%w: cannot %s a note in status %q", ErrInvalidTransition, action, note.Status)
	}

	if action == models.ActionDeletePermanently {
		return note, true, nil
	}

	out = note.Clone()
	out.Status = to
	switch to {
	case models.StatusActive:
		out.ArchivedAt = nil
		out.TrashedAt = nil
	case models.StatusArchived:
		out.ArchivedAt = timePtr(now)
		out.TrashedAt = nil
	case models.StatusTrashed:
		out.TrashedAt = timePtr(now)
		out.ArchivedAt = nil
	}
	out.UpdatedAt = now

	return out, false, nil
}

// CanEdit returns ErrNoteNotEditable unless the note is active. Content,
// color, tag, pin, image and summary edits all go through this check.
func CanEdit(note models.Note) error {
	if note.Status != models.StatusActive {
		return fmt.Errorf("%w: note %s is %s", ErrNoteNotEditable, note.ID, note.Status)
	}
	return nil
}

// Consistent reports whether the status and the archive/trash timestamps
// agree with each other.
func Consistent(note models.Note) bool {
	switch note.Status {
	case models.StatusActive:
		return note.ArchivedAt == nil && note.TrashedAt == nil
	case models.StatusArchived:
		return note.TrashedAt == nil
	case models.StatusTrashed:
		return note.ArchivedAt == nil
	default:
		return false
	}
}

// Expired reports whether a trashed note has outlived the retention window.
// A non-positive retention never expires anything.
func Expired(note models.Note, retention time.Duration, now time.Time) bool {
	if retention <= 0 || note.Status != models.StatusTrashed || note.TrashedAt == nil {
		return false
	}
	return now.Sub(*note.TrashedAt) >= retention
}

func timePtr(t time.Time) *time.Time {
	return &t
}
