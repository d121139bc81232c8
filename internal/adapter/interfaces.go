// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the summarization service.
//
// The primary abstraction is [Summarizer], which decouples the note store
// from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPSummarizer]) and a disabled
// implementation used when no endpoint is configured.
//
// Every failure returned by a Summarizer wraps [ErrSummarization]. HTTP
// status codes are additionally mapped to sentinel values by mapHTTPError
// so that callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401,
// [ErrTooManyRequests] for 429).
package adapter

import (
	"context"

	"github.com/MKhiriev/sticky-canvas/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/summarizer_mock.go -package=mock

// Summarizer turns note text into a short summary.
type Summarizer interface {
	// Summarize sends text as {"noteContent": text} and returns the
	// decoded {"summary": ...} reply. Errors wrap ErrSummarization.
	Summarize(ctx context.Context, text string) (models.SummaryResponse, error)
}
