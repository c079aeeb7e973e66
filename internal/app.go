package internal

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Lsnsh/www.rust-lang.org/pkg/health"
	"github.com/Lsnsh/www.rust-lang.org/pkg/logger"
	"github.com/Lsnsh/www.rust-lang.org/pkg/metrics"
)

// Server limits. Pages are small and rendered in memory, so the limits are
// fixed rather than configurable.
const (
	defaultReadTimeout       = 15 * time.Second
	defaultWriteTimeout      = 30 * time.Second
	defaultIdleTimeout       = 120 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
	defaultMaxHeaderBytes    = 1 << 20
	defaultShutdownTimeout   = 30 * time.Second
)

// App is the site's HTTP handler. All configuration happens in New; the
// route table does not change afterwards.
type App struct {
	router chi.Router
	logger *slog.Logger

	errorHandler            ErrorHandler
	notFoundHandler         HandlerFunc
	methodNotAllowedHandler HandlerFunc

	middlewares  []Middleware
	handlers     []Handler
	staticRoutes []staticRoute
	health       *healthConfig
	metrics      *metricsConfig
}

type staticRoute struct {
	handler http.Handler
	pattern string
}

type metricsConfig struct {
	recorder *metrics.Recorder
	path     string
}

// New builds an App from opts and declares its routes.
//
//	app := www.New(
//	    www.WithMiddleware(middlewares.Recover()),
//	    www.WithHandlers(handlers.NewPages(resolver, formatter)),
//	)
func New(opts ...Option) *App {
	a := &App{
		router: chi.NewRouter(),
		logger: logger.NewNope(),
	}
	for _, opt := range opts {
		opt(a)
	}
	a.routes()
	return a
}

// Router returns the underlying chi router.
func (a *App) Router() chi.Router {
	return a.router
}

func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Run serves the App on addr until the process is signalled or the
// WithContext context is cancelled, then shuts down gracefully. An empty
// addr keeps the Address option or ":8080".
//
//	err := app.Run(":8080", www.Logger(log))
func (a *App) Run(addr string, opts ...RunOption) error {
	return serve(buildRunConfig(append(opts, Address(addr))...), a.router)
}

// routes builds the route table. The not-found and method-not-allowed
// handlers are set first so "/{locale}" groups inherit them when mounted.
func (a *App) routes() {
	if a.notFoundHandler != nil {
		a.router.NotFound(a.wrapHandler(a.notFoundHandler))
	}
	if a.methodNotAllowedHandler != nil {
		a.router.MethodNotAllowed(a.wrapHandler(a.methodNotAllowedHandler))
	}

	if a.metrics != nil {
		a.router.Use(a.instrument)
	}
	for _, mw := range a.middlewares {
		a.router.Use(a.adaptMiddleware(mw))
	}

	for _, sr := range a.staticRoutes {
		a.router.Mount(sr.pattern, sr.handler)
	}
	if a.health != nil {
		a.router.Get(a.health.livenessPath, health.LivenessHandler())
		a.router.Get(a.health.readinessPath,
			health.ReadinessHandler(a.health.checks, health.WithLogger(a.logger)))
	}
	if a.metrics != nil {
		a.router.Handle(a.metrics.path, a.metrics.recorder.Handler())
	}

	r := &routerAdapter{router: a.router, app: a}
	for _, h := range a.handlers {
		h.Routes(r)
	}
}

// instrument records every request, including failed ones, against the
// matched route pattern.
func (a *App) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := NewResponseWriter(w)
		next.ServeHTTP(rw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				route = p
			}
		}
		a.metrics.recorder.ObserveRequest(r.Method, route, rw.Status(), rw.Size(), time.Since(start))
	})
}

// wrapHandler adapts h to net/http, sending its error to handleError.
func (a *App) wrapHandler(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := newContext(w, r, a)
		if err := h(c); err != nil {
			a.handleError(c, err)
		}
	}
}

func (a *App) handleError(c Context, err error) {
	if c.Written() {
		c.LogError("handler failed after response was written", slog.Any("error", err))
		return
	}
	if a.errorHandler != nil {
		if herr := a.errorHandler(c, err); herr != nil {
			c.LogError("error handler failed", slog.Any("error", herr))
		}
		return
	}
	if httpErr := AsHTTPError(err); httpErr != nil {
		http.Error(c.Response(), httpErr.Message, httpErr.Code)
		return
	}
	c.LogError("request failed", slog.Any("error", err))
	http.Error(c.Response(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
