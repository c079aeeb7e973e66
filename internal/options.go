package internal

import (
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Lsnsh/www.rust-lang.org/pkg/health"
	"github.com/Lsnsh/www.rust-lang.org/pkg/metrics"
)

// Option configures the application.
type Option func(*App)

// WithMiddleware adds middleware that runs for every request, before
// routing. Middleware runs in the order given.
func WithMiddleware(mw ...Middleware) Option {
	return func(a *App) {
		a.middlewares = append(a.middlewares, mw...)
	}
}

// WithHandlers registers the handlers whose Routes are declared by New.
func WithHandlers(h ...Handler) Option {
	return func(a *App) {
		a.handlers = append(a.handlers, h...)
	}
}

// WithStaticFiles serves the files of fsys/subDir under pattern, e.g.
// "/static/". Directory listings are answered with 404.
//
// Example:
//
//	www.WithStaticFiles(views.AssetsPrefix, views.Assets(), "static")
func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return func(a *App) {
		sub, err := fs.Sub(fsys, subDir)
		if err != nil {
			panic(err)
		}
		files := http.StripPrefix(strings.TrimSuffix(pattern, "/"), http.FileServerFS(sub))

		a.staticRoutes = append(a.staticRoutes, staticRoute{
			pattern: pattern,
			handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if strings.HasSuffix(r.URL.Path, "/") {
					http.NotFound(w, r)
					return
				}
				w.Header().Set("Cache-Control", "public, max-age=3600")
				w.Header().Set("X-Content-Type-Options", "nosniff")
				files.ServeHTTP(w, r)
			}),
		})
	}
}

// WithErrorHandler sets the handler for errors returned by handlers and
// middleware. Without one, HTTPErrors are written as plain text and any
// other error as a bare 500.
//
// Example:
//
//	www.WithErrorHandler(pages.ErrorHandler)
func WithErrorHandler(h ErrorHandler) Option {
	return func(a *App) {
		a.errorHandler = h
	}
}

// WithNotFoundHandler sets the handler for unmatched paths. Route groups
// inherit it, so a miss under "/{locale}" still runs the group middleware.
func WithNotFoundHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.notFoundHandler = h
	}
}

// WithMethodNotAllowedHandler sets the handler for known paths requested
// with an unsupported method.
func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return func(a *App) {
		a.methodNotAllowedHandler = h
	}
}

// WithHealthChecks enables health check endpoints with optional configuration.
// Liveness (/health/live): Always returns OK if process is running.
// Readiness (/health/ready): Runs all configured checks.
//
// Example:
//
//	www.WithHealthChecks(
//	    www.WithReadinessCheck("locales", localesLoaded),
//	)
func WithHealthChecks(opts ...HealthOption) Option {
	return func(a *App) {
		cfg := &healthConfig{
			livenessPath:  defaultLivenessPath,
			readinessPath: defaultReadinessPath,
			checks:        make(health.Checks),
		}
		for _, opt := range opts {
			opt(cfg)
		}
		a.health = cfg
	}
}

// WithLogger sets the application logger.
// Build it with logger.New to get request-scoped attributes.
//
// Example:
//
//	www.New(
//	    www.WithLogger(logger.New(cfg.Log, middlewares.RequestIDExtractor())),
//	)
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics records request metrics into rec and serves its registry.
// The endpoint defaults to "/metrics"; an empty path keeps the default.
//
// Example:
//
//	rec := metrics.New()
//	www.New(
//	    www.WithMetrics(rec, ""),
//	)
func WithMetrics(rec *metrics.Recorder, path string) Option {
	return func(a *App) {
		if rec == nil {
			return
		}
		if path == "" {
			path = defaultMetricsPath
		}
		a.metrics = &metricsConfig{recorder: rec, path: path}
	}
}
