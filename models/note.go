// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NoteType distinguishes text notes from freehand canvas notes.
// The type is fixed when the note is created.
type NoteType string

const (
	// TextNote holds plain or markdown text in Content and may carry an
	// attached image reference.
	TextNote NoteType = "text"

	// CanvasNote holds a captured drawing in CanvasData.
	CanvasNote NoteType = "canvas"
)

// NoteStatus is the lifecycle status of a note.
type NoteStatus string

const (
	// StatusActive notes are shown on the main board and may be edited.
	StatusActive NoteStatus = "active"

	// StatusArchived notes are hidden from the board but kept intact.
	StatusArchived NoteStatus = "archived"

	// StatusTrashed notes are soft-deleted and wait for restore or
	// permanent deletion.
	StatusTrashed NoteStatus = "trashed"
)

// Note is the persisted note entity.
//
// JSON field names match the layout written by earlier releases so that
// existing snapshots keep loading.
type Note struct {
	// ID is the opaque identifier assigned on creation. It never changes.
	ID string `json:"id"`

	// Title is an optional heading.
	Title string `json:"title,omitempty"`

	// Content is the text body of a text note. Empty content is allowed.
	Content string `json:"content"`

	// Type is fixed at creation.
	Type NoteType `json:"type"`

	// CanvasData is the captured drawing of a canvas note, encoded as a PNG
	// data URL.
	CanvasData string `json:"canvasData,omitempty"`

	// Color is the note background color, usually one of [Palette].
	Color string `json:"color"`

	// Tags is the note's tag list. Tag IDs are unique within one note.
	Tags []Tag `json:"tags"`

	// IsPinned moves an active note to the top of the board.
	IsPinned bool `json:"isPinned"`

	// ImageURL is an optional image reference attached to a text note.
	ImageURL string `json:"imageUrl,omitempty"`

	// DataAIHint is a short hint describing the attached image.
	DataAIHint string `json:"dataAiHint,omitempty"`

	// Summary is produced on demand by the summarization service.
	Summary string `json:"summary,omitempty"`

	Status NoteStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// ArchivedAt is set only while Status is StatusArchived.
	ArchivedAt *time.Time `json:"archivedAt"`

	// TrashedAt is set only while Status is StatusTrashed.
	TrashedAt *time.Time `json:"trashedAt"`
}

// Clone returns a deep copy of n so callers can hand notes out without
// sharing the tag slice or timestamp pointers.
func (n Note) Clone() Note {
	c := n
	if n.Tags != nil {
		c.Tags = make([]Tag, len(n.Tags))
		copy(c.Tags, n.Tags)
	}
	if n.ArchivedAt != nil {
		t := *n.ArchivedAt
		c.ArchivedAt = &t
	}
	if n.TrashedAt != nil {
		t := *n.TrashedAt
		c.TrashedAt = &t
	}
	return c
}

// HasTag reports whether the note carries a tag with the given id.
func (n Note) HasTag(tagID string) bool {
	for _, t := range n.Tags {
		if t.ID == tagID {
			return true
		}
	}
	return false
}

// DisplayTitle returns the title, or the first line of the content for
// untitled text notes.
func (n Note) DisplayTitle() string {
	if n.Title != "" {
		return n.Title
	}
	if n.Type == CanvasNote {
		return "Canvas note"
	}
	for i, r := range n.Content {
		if r == '\n' {
			return n.Content[:i]
		}
	}
	if n.Content == "" {
		return "Untitled"
	}
	return n.Content
}

// CloneNotes deep-copies a collection.
func CloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i := range notes {
		out[i] = notes[i].Clone()
	}
	return out
}
