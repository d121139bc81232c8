// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// NoteDraft carries the user-supplied fields of a note that is about to be
// created. Identity, status and timestamps are assigned by the note store.
type NoteDraft struct {
	Type       NoteType
	Title      string
	Content    string
	CanvasData string
	Color      string
	Tags       []Tag
	ImageURL   string
	DataAIHint string
}

// NoteUpdate is a partial update of an existing note. Nil fields are left
// untouched. ID and Type are intentionally absent: they cannot change after
// creation.
type NoteUpdate struct {
	Title      *string
	Content    *string
	CanvasData *string
	Color      *string
	Tags       *[]Tag
	IsPinned   *bool
	ImageURL   *string
	DataAIHint *string
	Summary    *string
}

// IsEmpty reports whether the update sets no field at all.
func (u NoteUpdate) IsEmpty() bool {
	return u.Title == nil &&
		u.Content == nil &&
		u.CanvasData == nil &&
		u.Color == nil &&
		u.Tags == nil &&
		u.IsPinned == nil &&
		u.ImageURL == nil &&
		u.DataAIHint == nil &&
		u.Summary == nil
}

// NoteFilter narrows a note listing. Zero fields match everything.
type NoteFilter struct {
	Status *NoteStatus
	Type   *NoteType
	TagID  string
	// Query is matched case-insensitively against title, content, summary
	// and tag names.
	Query string
}

// Ptr returns a pointer to v. It keeps NoteUpdate and NoteFilter literals
// short at call sites.
func Ptr[T any](v T) *T {
	return &v
}
