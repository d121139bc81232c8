package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidNote is wrapped around every note-level validation failure
	// so callers can match the whole family with errors.Is.
	ErrInvalidNote = errors.New("invalid note")

	ErrInvalidNoteType     = errors.New("unknown note type")
	ErrInvalidStatus       = errors.New("unknown note status")
	ErrEmptyColor          = errors.New("color is required")
	ErrEmptyTagID          = errors.New("tag id is required")
	ErrDuplicateTagID      = errors.New("duplicate tag id")
	ErrCanvasDataOnText    = errors.New("canvas data is only allowed on canvas notes")
	ErrTextFieldsOnCanvas  = errors.New("content, image url and image hint are only allowed on text notes")
	ErrEmptyID             = errors.New("note id is required")
	ErrInvalidTimestamps   = errors.New("updatedAt is before createdAt")
	ErrInconsistentStatus  = errors.New("status does not match archive/trash timestamps")
	ErrInvalidCanvasFormat = errors.New("canvas data must be a PNG data URL")
)
