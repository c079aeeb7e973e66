package www

import (
	"github.com/Lsnsh/www.rust-lang.org/internal"
	"github.com/Lsnsh/www.rust-lang.org/pkg/logger"
)

// Type aliases - public API
type (
	// App orchestrates the application lifecycle.
	// It manages HTTP routing, middleware, and graceful shutdown.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// Component is the interface for renderable templates.
	Component = internal.Component

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// ResponseWriter wraps http.ResponseWriter with status tracking and hooks.
	ResponseWriter = internal.ResponseWriter

	// Extractor reads a request value from an ordered list of sources.
	Extractor = internal.Extractor

	// ExtractorSource reads a single request value.
	ExtractorSource = internal.ExtractorSource

	// HTTPError is an error with an HTTP status code.
	HTTPError = internal.HTTPError

	// HTTPErrorOption configures an HTTPError.
	HTTPErrorOption = internal.HTTPErrorOption

	// ContextExtractor extracts a slog attribute from context.
	// Used with logger.New to add request-scoped values to logs.
	ContextExtractor = logger.ContextExtractor
)

// Constructors

// New creates a new application with the given options.
// The App is immutable after creation.
//
// Example:
//
//	app := www.New(
//	    www.WithMiddleware(middlewares.Recover(), middlewares.RequestID()),
//	    www.WithHandlers(handlers.NewPages(resolver, formatter)),
//	)
//
//	err := app.Run(":8080", www.Logger(log))
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// NewExtractor creates an Extractor that tries sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return internal.FromHeader(name)
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return internal.FromQuery(name)
}

// FromParam reads a route parameter.
func FromParam(name string) ExtractorSource {
	return internal.FromParam(name)
}

// Errors

// NewHTTPError creates an HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return internal.NewHTTPError(code, message)
}

// ErrNotFound creates a 404 HTTPError.
func ErrNotFound(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrNotFound(message, opts...)
}

// ErrMethodNotAllowed creates a 405 HTTPError.
func ErrMethodNotAllowed(message string, opts ...HTTPErrorOption) *HTTPError {
	return internal.ErrMethodNotAllowed(message, opts...)
}

// WithMessageID sets the message id used to localize the error.
func WithMessageID(id string) HTTPErrorOption {
	return internal.WithMessageID(id)
}

// WithRequestID attaches the request id to the error.
func WithRequestID(id string) HTTPErrorOption {
	return internal.WithRequestID(id)
}

// WithError sets the wrapped cause.
func WithError(err error) HTTPErrorOption {
	return internal.WithError(err)
}

// IsHTTPError reports whether err wraps an HTTPError.
func IsHTTPError(err error) bool {
	return internal.IsHTTPError(err)
}

// AsHTTPError returns the HTTPError wrapped by err, or nil.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}
