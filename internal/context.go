package internal

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10ntempl"
)

// Component is anything that renders HTML into a writer.
// templ.Component satisfies it.
type Component interface {
	Render(ctx context.Context, w io.Writer) error
}

// Context is the per-request value handed to handlers and middleware.
// It is itself a context.Context backed by the request context, so the
// locale and formatter stored by the locale middleware are visible to
// anything rendered with it.
type Context interface {
	context.Context

	Request() *http.Request
	Response() http.ResponseWriter
	Context() context.Context

	// SetContext replaces the request context. ctx must be derived from
	// Context().
	SetContext(ctx context.Context)

	// Set stores a value in the request context; Get reads it back.
	Set(key, value any)
	Get(key any) any

	// Param returns a route parameter, or "" when absent.
	Param(name string) string
	// Query returns a query parameter, or "" when absent.
	Query(name string) string
	QueryDefault(name, fallback string) string
	Header(name string) string
	SetHeader(name, value string)

	// Render writes component as text/html with code.
	Render(code int, component Component) error
	String(code int, s string) error
	JSON(code int, v any) error
	NoContent(code int) error
	Redirect(code int, url string) error

	// Error builds an HTTPError for the handler to return. It writes nothing.
	Error(code int, message string, opts ...HTTPErrorOption) *HTTPError

	// Written reports whether the response header has been sent.
	Written() bool

	LogDebug(msg string, attrs ...any)
	LogInfo(msg string, attrs ...any)
	LogError(msg string, attrs ...any)

	// Locale returns the locale of a localized route, or "" elsewhere.
	Locale() l10n.Locale

	// Localize formats id in the request locale. Outside localized routes
	// it returns id unchanged, as it does for an id that cannot be bound,
	// after logging the error.
	Localize(id string, hash ...l10n.Hash) string
}

type requestContext struct {
	request  *http.Request
	response *ResponseWriter
	logger   *slog.Logger
}

func newContext(w http.ResponseWriter, r *http.Request, app *App) *requestContext {
	return &requestContext{
		request:  r,
		response: NewResponseWriter(w),
		logger:   app.logger,
	}
}

func (c *requestContext) Request() *http.Request        { return c.request }
func (c *requestContext) Response() http.ResponseWriter { return c.response }
func (c *requestContext) Context() context.Context      { return c.request.Context() }

func (c *requestContext) Deadline() (time.Time, bool) { return c.Context().Deadline() }
func (c *requestContext) Done() <-chan struct{}       { return c.Context().Done() }
func (c *requestContext) Err() error                  { return c.Context().Err() }
func (c *requestContext) Value(key any) any           { return c.Context().Value(key) }

func (c *requestContext) SetContext(ctx context.Context) {
	c.request = c.request.WithContext(ctx)
}

func (c *requestContext) Set(key, value any) {
	c.SetContext(context.WithValue(c.Context(), key, value))
}

func (c *requestContext) Get(key any) any {
	return c.Context().Value(key)
}

func (c *requestContext) Param(name string) string {
	return chi.URLParam(c.request, name)
}

func (c *requestContext) Query(name string) string {
	return c.request.URL.Query().Get(name)
}

func (c *requestContext) QueryDefault(name, fallback string) string {
	if v := c.Query(name); v != "" {
		return v
	}
	return fallback
}

func (c *requestContext) Header(name string) string {
	return c.request.Header.Get(name)
}

func (c *requestContext) SetHeader(name, value string) {
	c.response.Header().Set(name, value)
}

// write sends the header with contentType, when given, and code.
func (c *requestContext) write(code int, contentType string) {
	if contentType != "" {
		c.response.Header().Set("Content-Type", contentType)
	}
	c.response.WriteHeader(code)
}

func (c *requestContext) Render(code int, component Component) error {
	c.write(code, "text/html; charset=utf-8")
	return component.Render(c.Context(), c.response)
}

func (c *requestContext) String(code int, s string) error {
	c.write(code, "text/plain; charset=utf-8")
	_, err := io.WriteString(c.response, s)
	return err
}

func (c *requestContext) JSON(code int, v any) error {
	c.write(code, "application/json; charset=utf-8")
	return json.NewEncoder(c.response).Encode(v)
}

func (c *requestContext) NoContent(code int) error {
	c.write(code, "")
	return nil
}

func (c *requestContext) Redirect(code int, url string) error {
	http.Redirect(c.response, c.request, url, code)
	return nil
}

func (c *requestContext) Error(code int, message string, opts ...HTTPErrorOption) *HTTPError {
	err := NewHTTPError(code, message)
	for _, opt := range opts {
		opt(err)
	}
	return err
}

func (c *requestContext) Written() bool {
	return c.response.Written()
}

func (c *requestContext) LogDebug(msg string, attrs ...any) {
	c.logger.DebugContext(c.Context(), msg, attrs...)
}

func (c *requestContext) LogInfo(msg string, attrs ...any) {
	c.logger.InfoContext(c.Context(), msg, attrs...)
}

func (c *requestContext) LogError(msg string, attrs ...any) {
	c.logger.ErrorContext(c.Context(), msg, attrs...)
}

func (c *requestContext) Locale() l10n.Locale {
	loc, _ := l10n.LocaleFromContext(c.Context())
	return loc
}

func (c *requestContext) Localize(id string, hash ...l10n.Hash) string {
	ctx := c.Context()
	if _, ok := l10n.LocaleFromContext(ctx); !ok {
		return id
	}
	if _, ok := l10n.FormatterFromContext(ctx); !ok {
		return id
	}
	out, err := l10ntempl.String(ctx, id, hash...)
	if err != nil {
		c.LogError("localize", slog.String("id", id), slog.Any("error", err))
		return id
	}
	return out
}
