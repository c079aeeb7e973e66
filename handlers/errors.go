package handlers

import (
	"log/slog"
	"net/http"

	www "github.com/Lsnsh/www.rust-lang.org"
	"github.com/Lsnsh/www.rust-lang.org/middlewares"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/views"
)

// NotFound answers unmatched routes.
func (h *Pages) NotFound(c www.Context) error {
	return www.ErrNotFound("page not found",
		www.WithMessageID("error-not-found"),
		www.WithRequestID(middlewares.GetRequestID(c)),
	)
}

// MethodNotAllowed answers routes matched with the wrong method.
func (h *Pages) MethodNotAllowed(c www.Context) error {
	return www.ErrMethodNotAllowed("method not allowed",
		www.WithMessageID("error-method-not-allowed"),
		www.WithRequestID(middlewares.GetRequestID(c)),
	)
}

// ErrorHandler renders handler errors as localized pages. Requests that
// failed before a locale was resolved are answered in the default locale.
func (h *Pages) ErrorHandler(c www.Context, err error) error {
	if _, ok := l10n.LocaleFromContext(c.Context()); !ok {
		ctx := l10n.WithLocale(c.Context(), h.resolver.DefaultLocale())
		c.SetContext(l10n.WithFormatter(ctx, h.formatter))
	}

	code, titleID := http.StatusInternalServerError, ""
	if httpErr := www.AsHTTPError(err); httpErr != nil {
		code, titleID = httpErr.Code, httpErr.MessageID
	}

	home := "/" + c.Locale().String() + "/"
	if code >= http.StatusInternalServerError {
		c.LogError("request failed",
			slog.Any("error", err),
			slog.Bool("panic", middlewares.IsPanicError(err)),
		)
		return c.Render(code, views.Layout(h.page("error-internal", "/"), views.ServerError(home)))
	}

	if titleID == "" {
		titleID = "error-not-found"
	}
	return c.Render(code, views.Layout(h.page(titleID, "/"), views.NotFound(home, c.Request().URL.Path)))
}
