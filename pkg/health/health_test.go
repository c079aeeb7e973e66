package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Lsnsh/www.rust-lang.org/pkg/health"
)

func TestRun(t *testing.T) {
	t.Parallel()

	t.Run("no checks is healthy", func(t *testing.T) {
		t.Parallel()
		resp := health.Run(context.Background(), nil)
		require.Equal(t, health.StatusHealthy, resp.Status)
		require.Empty(t, resp.Checks)
	})

	t.Run("one failure makes the service unhealthy", func(t *testing.T) {
		t.Parallel()
		resp := health.Run(context.Background(), health.Checks{
			"l10n":  func(context.Context) error { return nil },
			"other": func(context.Context) error { return errors.New("down") },
		})
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, health.StatusHealthy, resp.Checks["l10n"].Status)
		require.Equal(t, health.StatusUnhealthy, resp.Checks["other"].Status)
		require.Contains(t, resp.Checks["other"].Error, "down")
		require.Contains(t, resp.Checks["other"].Error, health.ErrCheckFailed.Error())
	})

	t.Run("slow check times out", func(t *testing.T) {
		t.Parallel()
		resp := health.Run(context.Background(), health.Checks{
			"slow": func(ctx context.Context) error {
				<-ctx.Done()
				return ctx.Err()
			},
		}, health.WithTimeout(10*time.Millisecond))
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Contains(t, resp.Checks["slow"].Error, health.ErrCheckTimeout.Error())
	})
}

func TestHandlers(t *testing.T) {
	t.Parallel()

	t.Run("liveness plain text", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		health.LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "OK", rec.Body.String())
	})

	t.Run("readiness json", func(t *testing.T) {
		t.Parallel()
		h := health.ReadinessHandler(health.Checks{
			"l10n": func(context.Context) error { return errors.New("not loaded") },
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready?format=json", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var resp health.Response
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Equal(t, health.StatusUnhealthy, resp.Status)
		require.Equal(t, health.StatusUnhealthy, resp.Checks["l10n"].Status)
	})

	t.Run("readiness plain text failure", func(t *testing.T) {
		t.Parallel()
		h := health.ReadinessHandler(health.Checks{
			"l10n": func(context.Context) error { return errors.New("not loaded") },
		})
		rec := httptest.NewRecorder()
		h(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		require.Equal(t, "Service Unavailable", rec.Body.String())
	})
}
