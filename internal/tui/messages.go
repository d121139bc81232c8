package tui

import (
	"github.com/MKhiriev/sticky-canvas/models"
)

type notesLoadedMsg struct{}

type noteSavedMsg struct {
	note models.Note
	err  error
}

type transitionDoneMsg struct {
	action models.LifecycleAction
	err    error
}

type summarizeDoneMsg struct {
	noteID string
	err    error
}

type copiedMsg struct{}

type clearStatusMsg struct{}

type errorMsg struct {
	err error
}
