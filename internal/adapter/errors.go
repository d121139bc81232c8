package adapter

import "errors"

var (
	ErrSummarization      = errors.New("summarization failed")
	ErrSummarizerDisabled = errors.New("summarization service is not configured")
	ErrEmptySummary       = errors.New("summarization service returned an empty summary")
	ErrInvalidEndpoint    = errors.New("invalid summarizer endpoint")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrGatewayTimeout      = errors.New("gateway timeout")
)
