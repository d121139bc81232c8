// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/sticky-canvas/internal/adapter"
	"github.com/MKhiriev/sticky-canvas/internal/app"
	"github.com/MKhiriev/sticky-canvas/internal/canvas"
	"github.com/MKhiriev/sticky-canvas/internal/lifecycle"
	"github.com/MKhiriev/sticky-canvas/internal/service"
	"github.com/MKhiriev/sticky-canvas/internal/validators"
)

// humanizeError maps the sentinel errors of the lower layers to the message
// shown in the error overlay.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrNoteNotFound):
		return app.MsgNoteNotFound
	case errors.Is(err, lifecycle.ErrNoteNotEditable):
		return app.MsgNoteNotEditable
	case errors.Is(err, lifecycle.ErrInvalidTransition), errors.Is(err, lifecycle.ErrUnknownAction):
		return app.MsgInvalidTransition
	case errors.Is(err, validators.ErrInvalidNote):
		return app.MsgInvalidNote + ": " + err.Error()
	case errors.Is(err, service.ErrEmptyContent):
		return app.MsgEmptyContent
	case errors.Is(err, service.ErrNotSummarizable):
		return app.MsgNotSummarizable
	case errors.Is(err, adapter.ErrSummarizerDisabled):
		return app.MsgSummarizerDisabled
	case errors.Is(err, adapter.ErrSummarization):
		if isUnavailable(err) {
			return app.MsgSummarizerUnavailable
		}
		return app.MsgSummarizationFailed
	case errors.Is(err, canvas.ErrInvalidDataURL),
		errors.Is(err, canvas.ErrInvalidSize),
		errors.Is(err, canvas.ErrInvalidColor),
		errors.Is(err, canvas.ErrInvalidStrokeWidth):
		return app.MsgCanvasFailed + ": " + err.Error()
	}

	return err.Error()
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, adapter.ErrServiceUnavailable) ||
		errors.Is(err, adapter.ErrGatewayTimeout) ||
		errors.Is(err, adapter.ErrBadGateway) {
		return true
	}

	s := strings.ToLower(err.Error())
	return strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout")
}
