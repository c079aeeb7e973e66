// Package metrics exposes Prometheus metrics for localized page serving.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
)

// Recorder owns a private Prometheus registry with the localization and
// HTTP collectors. It implements l10n.Observer.
type Recorder struct {
	registry *prometheus.Registry

	fallbacks *prometheus.CounterVec
	missing   *prometheus.CounterVec
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	size      *prometheus.HistogramVec
}

var _ l10n.Observer = (*Recorder)(nil)

// New creates a Recorder. Go runtime and process collectors are included.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		fallbacks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "l10n_fallback_total",
			Help: "Messages served from the default locale because the requested locale lacks them.",
		}, []string{"locale"}),
		missing: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "l10n_missing_total",
			Help: "Messages missing from both the requested and the default locale.",
		}, []string{"locale"}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		size: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "HTTP response body size in bytes.",
			Buckets: prometheus.ExponentialBuckets(256, 4, 8),
		}, []string{"route"}),
	}

	r.registry.MustRegister(
		r.fallbacks,
		r.missing,
		r.requests,
		r.duration,
		r.size,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// Fallback counts a message served from the default locale.
func (r *Recorder) Fallback(loc l10n.Locale, _ string) {
	r.fallbacks.WithLabelValues(loc.String()).Inc()
}

// Missing counts a message that no bundle defines.
func (r *Recorder) Missing(loc l10n.Locale, _ string) {
	r.missing.WithLabelValues(loc.String()).Inc()
}

// ObserveRequest records one served HTTP request. route is the matched
// route pattern, not the raw path; size is the body length in bytes.
func (r *Recorder) ObserveRequest(method, route string, status int, size int64, d time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.duration.WithLabelValues(method, route).Observe(d.Seconds())
	r.size.WithLabelValues(route).Observe(float64(size))
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

// Gatherer returns the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}
