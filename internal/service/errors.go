package service

import "errors"

var (
	ErrNoteNotFound    = errors.New("note not found")
	ErrEmptyContent    = errors.New("note content is empty")
	ErrNotSummarizable = errors.New("only text notes can be summarized")
)
