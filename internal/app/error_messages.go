// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// sticky-canvas terminal UI and the client runtime.
//
// All Msg* constants are shown in the error overlay or the status line.
// Keeping them in one place keeps the wording consistent across screens.
package app

const (
	// MsgNoteNotFound is shown when the selected note disappeared, for
	// example after a background trash sweep.
	MsgNoteNotFound = "note not found, it may have been deleted"

	// MsgInvalidTransition is shown when a lifecycle action does not apply
	// to the note's current status.
	MsgInvalidTransition = "this action is not available for the note in its current state"

	// MsgNoteNotEditable is shown when an edit, pin or color change targets
	// an archived or trashed note.
	MsgNoteNotEditable = "only active notes can be edited, restore or unarchive it first"

	// MsgInvalidNote is shown when a note fails validation.
	MsgInvalidNote = "the note is invalid"

	// MsgEmptyContent is shown when summarizing a note without text.
	MsgEmptyContent = "note content is empty, nothing to summarize"

	// MsgNotSummarizable is shown when summarizing a canvas note.
	MsgNotSummarizable = "only text notes can be summarized"

	// MsgSummarizerDisabled is shown when no summarization endpoint is
	// configured.
	MsgSummarizerDisabled = "summarization is not configured (set ADAPTER_SUMMARIZER_URL)"

	// MsgSummarizerUnavailable is shown when the summarization service
	// cannot be reached or timed out.
	MsgSummarizerUnavailable = "summarization service is unavailable, try again later"

	// MsgSummarizationFailed is shown for every other summarization failure.
	MsgSummarizationFailed = "failed to summarize the note"

	// MsgCanvasFailed is shown when the drawing cannot be captured or
	// restored.
	MsgCanvasFailed = "canvas error"

	// MsgClipboardFailed is shown when the system clipboard is unavailable.
	MsgClipboardFailed = "failed to copy to clipboard"

	// MsgNothingToCopy is shown when the selected note has no text.
	MsgNothingToCopy = "nothing to copy"

	// MsgNoNotes is shown on empty boards.
	MsgNoNotes = "no notes here"

	// MsgCopied confirms a clipboard copy.
	MsgCopied = "copied!"

	// MsgSummarizing is shown while a summarization request is in flight.
	MsgSummarizing = "summarizing..."

	// MsgSummaryReady confirms that a summary was stored on the note.
	MsgSummaryReady = "summary ready"
)
