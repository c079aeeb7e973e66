package middlewares

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Lsnsh/www.rust-lang.org/internal"
	"github.com/Lsnsh/www.rust-lang.org/pkg/logger"
)

type requestIDKey struct{}

// RequestIDHeader is the response header carrying the request id.
const RequestIDHeader = "X-Request-ID"

// DefaultRequestIDHeaders are the request headers checked, in order, for an
// upstream id.
var DefaultRequestIDHeaders = []string{RequestIDHeader, "X-Correlation-ID"}

// maxRequestIDLength caps upstream ids copied into logs and headers.
const maxRequestIDLength = 128

type requestIDConfig struct {
	headers  []string
	generate func() string
}

// RequestIDOption configures RequestID.
type RequestIDOption func(*requestIDConfig)

// WithRequestIDHeaders replaces the request headers checked for an
// upstream id.
func WithRequestIDHeaders(headers ...string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		cfg.headers = headers
	}
}

// WithRequestIDGenerator replaces the random UUID generator.
func WithRequestIDGenerator(gen func() string) RequestIDOption {
	return func(cfg *requestIDConfig) {
		if gen != nil {
			cfg.generate = gen
		}
	}
}

// RequestID returns middleware that tags every request with an id. An
// upstream id is reused when it is short and printable; otherwise a random
// UUID is generated. The id is stored in the context and echoed as
// X-Request-ID.
func RequestID(opts ...RequestIDOption) internal.Middleware {
	cfg := requestIDConfig{
		headers:  DefaultRequestIDHeaders,
		generate: uuid.NewString,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	sources := make([]internal.ExtractorSource, len(cfg.headers))
	for i, h := range cfg.headers {
		sources[i] = internal.FromHeader(h)
	}
	upstream := internal.NewExtractor(sources...)

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			id, ok := upstream.Extract(c)
			if !ok || !validRequestID(id) {
				id = cfg.generate()
			}

			c.Set(requestIDKey{}, id)
			c.SetHeader(RequestIDHeader, id)
			return next(c)
		}
	}
}

// validRequestID accepts short ids made of visible ASCII.
func validRequestID(id string) bool {
	if len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// GetRequestID returns the request id, or "" outside RequestID.
func GetRequestID(c internal.Context) string {
	id, _ := c.Get(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor adds "request_id" to log records written with a
// request context. Use it with logger.New.
func RequestIDExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		id, _ := ctx.Value(requestIDKey{}).(string)
		if id == "" {
			return slog.Attr{}, false
		}
		return slog.String("request_id", id), true
	}
}
