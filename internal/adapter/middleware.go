package adapter

import (
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/MKhiriev/sticky-canvas/internal/logger"
	"github.com/MKhiriev/sticky-canvas/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every outgoing request with a trace id unless the caller
// already set one.
func withTraceID(client *utils.HTTPClient) {
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(traceIDHeader) == "" {
			r.SetHeader(traceIDHeader, uuid.NewString())
		}
		return nil
	})
}

// withLogging logs one line per completed round trip.
func withLogging(client *utils.HTTPClient, log *logger.Logger) {
	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Info().
			Str("trace_id", resp.Request.Header.Get(traceIDHeader)).
			Str("uri", resp.Request.URL).
			Str("method", resp.Request.Method).
			Int("status", resp.StatusCode()).
			Dur("duration", resp.Time()).
			Int64("size", resp.Size()).
			Send()
		return nil
	})
}
