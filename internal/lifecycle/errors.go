package lifecycle

import "errors"

var (
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
	ErrNoteNotEditable   = errors.New("note is not editable in its current status")
	ErrUnknownAction     = errors.New("unknown lifecycle action")
)
