package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/sticky-canvas/internal/config"
	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/utils"
	"github.com/MKhiriev/sticky-canvas/models"
)

// defaultSummarizePath is used when the configured endpoint has no path.
const defaultSummarizePath = "/summarize"

type httpSummarizer struct {
	client *utils.HTTPClient
	path   string

	logger *logger.Logger
}

// NewSummarizer returns the HTTP summarizer for adapterCfg, or a disabled
// summarizer when no endpoint is configured.
func NewSummarizer(adapterCfg config.ClientAdapter, log *logger.Logger) (Summarizer, error) {
	if strings.TrimSpace(adapterCfg.SummarizerURL) == "" {
		log.Info().Msg("summarizer endpoint not configured, summarization disabled")
		return NewDisabledSummarizer(), nil
	}
	return NewHTTPSummarizer(adapterCfg, log)
}

// NewHTTPSummarizer constructs an HTTP/REST implementation of [Summarizer].
// adapterCfg.SummarizerURL may omit the scheme (http is assumed) and the
// path (/summarize is assumed). The API key, when set, is sent as a bearer
// token.
func NewHTTPSummarizer(adapterCfg config.ClientAdapter, log *logger.Logger) (Summarizer, error) {
	baseURL, path, err := normalizeEndpoint(adapterCfg.SummarizerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidEndpoint, err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout).
		WithBearer(adapterCfg.SummarizerAPIKey)
	withTraceID(client)
	withLogging(client, log)

	return &httpSummarizer{client: client, path: path, logger: log}, nil
}

func normalizeEndpoint(raw string) (baseURL, path string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", "", fmt.Errorf("address must include host and scheme")
	}

	path = strings.TrimRight(u.Path, "/")
	if path == "" {
		path = defaultSummarizePath
	}
	if u.RawQuery != "" {
		path += "?" + u.RawQuery
	}

	return u.Scheme + "://" + u.Host, path, nil
}

// Summarize implements [Summarizer]. It POSTs the text to the configured
// endpoint and decodes the summary from the response body.
func (h *httpSummarizer) Summarize(ctx context.Context, text string) (models.SummaryResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.SummaryRequest{NoteContent: text}).
		Post(h.path)
	if err != nil {
		h.logger.Err(err).Str("func", "httpSummarizer.Summarize").Msg("summarize request failed")
		return models.SummaryResponse{}, fmt.Errorf("%w: summarize request: %w", ErrSummarization, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).
			Str("func", "httpSummarizer.Summarize").
			Int("status", resp.StatusCode()).
			Msg("summarization service rejected the request")
		return models.SummaryResponse{}, fmt.Errorf("%w: %w", ErrSummarization, err)
	}

	var out models.SummaryResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return models.SummaryResponse{}, fmt.Errorf("%w: decode response: %w", ErrSummarization, err)
	}
	out.Summary = strings.TrimSpace(out.Summary)
	if out.Summary == "" {
		return models.SummaryResponse{}, fmt.Errorf("%w: %w", ErrSummarization, ErrEmptySummary)
	}

	return out, nil
}

type disabledSummarizer struct{}

// NewDisabledSummarizer returns a [Summarizer] that always fails with
// ErrSummarizerDisabled.
func NewDisabledSummarizer() Summarizer {
	return disabledSummarizer{}
}

func (disabledSummarizer) Summarize(context.Context, string) (models.SummaryResponse, error) {
	return models.SummaryResponse{}, fmt.Errorf("%w: %w", ErrSummarization, ErrSummarizerDisabled)
}
