// Package internal provides the core types and implementation of the web
// layer that serves the localized site.
//
// This package is internal and should not be used directly. Import
// "github.com/Lsnsh/www.rust-lang.org" instead, which re-exports the public API.
//
// # Core Types
//
//   - App: Orchestrates HTTP routing, middleware, and graceful shutdown
//   - Context: Request/response access, rendering, and the request locale
//   - Router: Interface handlers use to declare routes and route groups
//   - Handler: Implemented by types that declare routes on a router
//   - HandlerFunc: Signature for route handlers that return errors
//   - Middleware: Wraps handlers to add cross-cutting concerns
//   - ErrorHandler: Custom error handling function for handler errors
//   - HTTPError: Typed error carrying status code and message id
//
// # Context as context.Context
//
// Context embeds context.Context. Components rendered with c.Render receive
// the request context, so the locale and formatter stored by the locale
// middleware are visible to localized templates:
//
//	func (h *Pages) index(c www.Context) error {
//	    return c.Render(http.StatusOK, views.Index())
//	}
//
// # Endpoints
//
// WithHealthChecks registers liveness and readiness probes, WithMetrics
// records every request against its chi route pattern and serves the
// Prometheus registry.
//
// # Lifecycle
//
// App.Run listens, runs startup hooks, and blocks until SIGINT or SIGTERM.
// On shutdown the HTTP server drains first, then shutdown hooks run in
// registration order within the shutdown timeout.
package internal
