package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Lsnsh/www.rust-lang.org/internal"
	"github.com/Lsnsh/www.rust-lang.org/middlewares"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	t.Run("generates a UUID when not present", func(t *testing.T) {
		t.Parallel()

		var captured string
		w := serve("/", "/", middlewares.RequestID(), func(c internal.Context) error {
			captured = middlewares.GetRequestID(c)
			return nil
		})

		_, err := uuid.Parse(captured)
		require.NoError(t, err)
		require.Equal(t, captured, w.Header().Get("X-Request-ID"))
	})

	t.Run("uses existing request ID from header", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Correlation-ID", "upstream-123")
		w := serveRequest("/", req, middlewares.RequestID(), func(internal.Context) error { return nil })

		require.Equal(t, "upstream-123", w.Header().Get("X-Request-ID"))
	})

	t.Run("replaces oversized upstream IDs", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", strings.Repeat("a", 500))
		w := serveRequest("/", req, middlewares.RequestID(), func(internal.Context) error { return nil })

		_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
		require.NoError(t, err)
	})

	t.Run("replaces upstream IDs with control characters", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "abc\x1b[31mdef")
		w := serveRequest("/", req, middlewares.RequestID(), func(internal.Context) error { return nil })

		_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
		require.NoError(t, err)
	})

	t.Run("custom headers and generator", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "ignored")
		w := serveRequest("/", req, middlewares.RequestID(
			middlewares.WithRequestIDHeaders("X-Trace"),
			middlewares.WithRequestIDGenerator(func() string { return "fixed" }),
		), func(internal.Context) error { return nil })

		require.Equal(t, "fixed", w.Header().Get("X-Request-ID"))
	})

	t.Run("GetRequestID without middleware", func(t *testing.T) {
		t.Parallel()

		serve("/", "/", func(next internal.HandlerFunc) internal.HandlerFunc { return next }, func(c internal.Context) error {
			require.Empty(t, middlewares.GetRequestID(c))
			return nil
		})
	})
}

func TestRequestIDExtractor(t *testing.T) {
	t.Parallel()

	extractor := middlewares.RequestIDExtractor()

	serve("/", "/", middlewares.RequestID(), func(c internal.Context) error {
		attr, ok := extractor(c.Context())
		require.True(t, ok)
		require.Equal(t, "request_id", attr.Key)
		require.Equal(t, middlewares.GetRequestID(c), attr.Value.String())
		return nil
	})

	_, ok := extractor(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.False(t, ok)
}
