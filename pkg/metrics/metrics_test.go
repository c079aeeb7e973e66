package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/Lsnsh/www.rust-lang.org/pkg/metrics"
)

func TestRecorder(t *testing.T) {
	t.Parallel()

	t.Run("counts fallbacks and missing messages per locale", func(t *testing.T) {
		t.Parallel()
		r := metrics.New()
		r.Fallback("fr", "greeting")
		r.Fallback("fr", "tagline")
		r.Fallback("de", "greeting")
		r.Missing("fr", "nope")

		count, err := testutil.GatherAndCount(r.Gatherer(), "l10n_fallback_total")
		require.NoError(t, err)
		require.Equal(t, 2, count)

		count, err = testutil.GatherAndCount(r.Gatherer(), "l10n_missing_total")
		require.NoError(t, err)
		require.Equal(t, 1, count)
	})

	t.Run("serves the exposition format", func(t *testing.T) {
		t.Parallel()
		r := metrics.New()
		r.Fallback("fr", "greeting")
		r.ObserveRequest(http.MethodGet, "/{locale}/", http.StatusOK, 1024, 15*time.Millisecond)

		rec := httptest.NewRecorder()
		r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		body, err := io.ReadAll(rec.Body)
		require.NoError(t, err)
		require.Contains(t, string(body), `l10n_fallback_total{locale="fr"} 1`)
		require.Contains(t, string(body), `http_requests_total{method="GET",route="/{locale}/",status="200"} 1`)
		require.Contains(t, string(body), `http_response_size_bytes_sum{route="/{locale}/"} 1024`)
	})

	t.Run("recorders are independent", func(t *testing.T) {
		t.Parallel()
		a, b := metrics.New(), metrics.New()
		a.Missing("fr", "x")

		count, err := testutil.GatherAndCount(b.Gatherer(), "l10n_missing_total")
		require.NoError(t, err)
		require.Zero(t, count)
	})
}
