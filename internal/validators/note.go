package validators

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/sticky-canvas/models"
)

// Field name constants select which rules Validate applies. When no field
// is passed the default set for the value's type is used.
const (
	// FieldType checks that the note type is text or canvas.
	FieldType = "type"

	// FieldColor checks that a color is set.
	FieldColor = "color"

	// FieldTags checks tag ids for emptiness and duplicates.
	FieldTags = "tags"

	// FieldPayload checks that canvas data and text-only fields sit on the
	// right note type.
	FieldPayload = "payload"

	// FieldID checks that the note has an identifier.
	FieldID = "id"

	// FieldStatus checks the status value and its archive/trash timestamps.
	FieldStatus = "status"

	// FieldTimestamps checks that updatedAt is not before createdAt.
	FieldTimestamps = "timestamps"
)

// canvasDataPrefix is the only encoding the canvas package produces.
const canvasDataPrefix = "data:image/png;base64,"

// NoteValidator validates note drafts before creation and full notes after
// an update has been merged or a snapshot has been loaded.
type NoteValidator struct {
}

// NewNoteValidator constructs a NoteValidator and returns it as Validator.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// models.NoteDraft and models.Note, as values or pointers. Every rule
// violation is returned wrapped in ErrInvalidNote.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	switch value := obj.(type) {
	case models.NoteDraft:
		err = v.validateDraft(value, fields...)
	case *models.NoteDraft:
		err = v.validateDraft(*value, fields...)
	case models.Note:
		err = v.validateNote(value, fields...)
	case *models.Note:
		err = v.validateNote(*value, fields...)
	default:
		return ErrUnsupportedType
	}

	if err != nil && !errors.Is(err, ErrUnknownField) {
		return fmt.Errorf("%w: %w", ErrInvalidNote, err)
	}
	return err
}

// validateDraft validates a NoteDraft.
//
// Default fields: Type, Tags, Payload. Color is optional on a draft because
// the store falls back to the default note color.
func (v *NoteValidator) validateDraft(draft models.NoteDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldType, FieldTags, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldType:
			if !isValidNoteType(draft.Type) {
				return fmt.Errorf("%w: %q", ErrInvalidNoteType, draft.Type)
			}
		case FieldColor:
			if strings.TrimSpace(draft.Color) == "" {
				return ErrEmptyColor
			}
		case FieldTags:
			if err := validateTags(draft.Tags); err != nil {
				return err
			}
		case FieldPayload:
			if err := validatePayload(draft.Type, draft.Content, draft.CanvasData, draft.ImageURL, draft.DataAIHint); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateNote validates a complete Note.
//
// Default fields: ID, Type, Color, Tags, Payload, Status, Timestamps.
func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldColor, FieldTags, FieldPayload, FieldStatus, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if note.ID == "" {
				return ErrEmptyID
			}
		case FieldType:
			if !isValidNoteType(note.Type) {
				return fmt.Errorf("%w: %q", ErrInvalidNoteType, note.Type)
			}
		case FieldColor:
			if strings.TrimSpace(note.Color) == "" {
				return ErrEmptyColor
			}
		case FieldTags:
			if err := validateTags(note.Tags); err != nil {
				return err
			}
		case FieldPayload:
			if err := validatePayload(note.Type, note.Content, note.CanvasData, note.ImageURL, note.DataAIHint); err != nil {
				return err
			}
		case FieldStatus:
			if err := validateStatus(note); err != nil {
				return err
			}
		case FieldTimestamps:
			if note.UpdatedAt.Before(note.CreatedAt) {
				return ErrInvalidTimestamps
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isValidNoteType(t models.NoteType) bool {
	return t == models.TextNote || t == models.CanvasNote
}

func validateTags(tags []models.Tag) error {
	seen := make(map[string]struct{}, len(tags))
	for i, tag := range tags {
		if tag.ID == "" {
			return fmt.Errorf("%w at index %d", ErrEmptyTagID, i)
		}
		if _, ok := seen[tag.ID]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateTagID, tag.ID)
		}
		seen[tag.ID] = struct{}{}
	}
	return nil
}

func validatePayload(t models.NoteType, content, canvasData, imageURL, hint string) error {
	switch t {
	case models.TextNote:
		if canvasData != "" {
			return ErrCanvasDataOnText
		}
	case models.CanvasNote:
		if content != "" || imageURL != "" || hint != "" {
			return ErrTextFieldsOnCanvas
		}
		if canvasData != "" && !strings.HasPrefix(canvasData, canvasDataPrefix) {
			return ErrInvalidCanvasFormat
		}
	}
	return nil
}

func validateStatus(note models.Note) error {
	switch note.Status {
	case models.StatusActive:
		if note.ArchivedAt != nil || note.TrashedAt != nil {
			return ErrInconsistentStatus
		}
	case models.StatusArchived:
		if note.TrashedAt != nil {
			return ErrInconsistentStatus
		}
	case models.StatusTrashed:
		if note.ArchivedAt != nil {
			return ErrInconsistentStatus
		}
	default:
		return fmt.Errorf("%w: %q", ErrInvalidStatus, note.Status)
	}
	return nil
}
