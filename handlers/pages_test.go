package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	www "github.com/Lsnsh/www.rust-lang.org"
	"github.com/Lsnsh/www.rust-lang.org/handlers"
	"github.com/Lsnsh/www.rust-lang.org/locales"
	"github.com/Lsnsh/www.rust-lang.org/middlewares"
	"github.com/Lsnsh/www.rust-lang.org/pkg/cache"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
)

type routes func(r www.Router)

func (f routes) Routes(r www.Router) { f(r) }

func newApp(t *testing.T, opts ...handlers.PagesOption) *www.App {
	t.Helper()

	reg, err := l10n.Open(locales.FS())
	require.NoError(t, err)

	opts = append([]handlers.PagesOption{handlers.WithVersion("1.2.3"), handlers.WithTeams(7)}, opts...)
	pages := handlers.NewPages(l10n.NewResolver(reg), l10n.NewFormatter(reg), opts...)
	return www.New(
		www.WithMiddleware(middlewares.Recover(), middlewares.RequestID()),
		www.WithErrorHandler(pages.ErrorHandler),
		www.WithNotFoundHandler(pages.NotFound),
		www.WithMethodNotAllowedHandler(pages.MethodNotAllowed),
		www.WithHandlers(pages, routes(func(r www.Router) {
			r.GET("/boom", func(www.Context) error {
				return errors.New("database unavailable")
			})
			r.GET("/panic", func(www.Context) error {
				panic("unreachable state")
			})
		})),
	)
}

func do(app *www.App, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

func TestRootRedirect(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	tests := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{name: "no header", target: "/", want: "/en-US/"},
		{name: "regional variant", target: "/", accept: "fr-CA,fr;q=0.9,en;q=0.5", want: "/fr/"},
		{name: "weighted", target: "/", accept: "es;q=0.9,de;q=0.8", want: "/de/"},
		{name: "unsupported", target: "/", accept: "ja", want: "/en-US/"},
		{name: "malformed", target: "/", accept: ";;;q=x", want: "/en-US/"},
		{name: "query override", target: "/?lang=de", accept: "fr", want: "/de/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			header := http.Header{}
			if tt.accept != "" {
				header.Set("Accept-Language", tt.accept)
			}
			w := do(app, http.MethodGet, tt.target, header)
			require.Equal(t, http.StatusFound, w.Code)
			require.Equal(t, tt.want, w.Header().Get("Location"))
			require.Equal(t, "Accept-Language", w.Header().Get("Vary"))
		})
	}
}

func TestPages(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	t.Run("index", func(t *testing.T) {
		t.Parallel()

		w := do(app, http.MethodGet, "/fr/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "fr", w.Header().Get("Content-Language"))
		require.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		require.NotEmpty(t, w.Header().Get(middlewares.DefaultRequestIDHeaders[0]))

		body := w.Body.String()
		require.Contains(t, body, `<html lang="fr">`)
		require.Contains(t, body, "1.2.3")
		// Untranslated messages come from the default locale.
		require.Contains(t, body, "<h3>Productivity</h3>")
	})

	t.Run("community", func(t *testing.T) {
		t.Parallel()

		w := do(app, http.MethodGet, "/en-US/community", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "7 teams")
	})

	t.Run("percent encoded locale", func(t *testing.T) {
		t.Parallel()

		w := do(app, http.MethodGet, "/en%2DUS/", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "en-US", w.Header().Get("Content-Language"))
	})
}

func TestErrors(t *testing.T) {
	t.Parallel()

	app := newApp(t)

	t.Run("unsupported locale", func(t *testing.T) {
		t.Parallel()

		w := do(app, http.MethodGet, "/xx/community", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
		require.Empty(t, w.Header().Get("Content-Language"))

		body := w.Body.String()
		require.Contains(t, body, `<html lang="en-US">`)
		require.Contains(t, body, "<h1>Page not found</h1>")
	})

	t.Run("locale is case sensitive", func(t *testing.T) {
		t.Parallel()

		w := do(app, http.MethodGet, "/EN-us/", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown page keeps locale", func(t *testing.T) {
		t.Parallel()

		w := do(app, http.MethodGet, "/de/missing", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		body := w.Body.String()
		require.Contains(t, body, `<html lang="de">`)
		require.Contains(t, body, "<h1>Seite nicht gefunden</h1>")
		require.Contains(t, body, "Sorry, we could not find /de/missing.")
		require.Contains(t, body, `<a href="/de/">Zurück zur Startseite</a>`)
	})

	t.Run("method not allowed", func(t *testing.T) {
		t.Parallel()

		w := do(app, http.MethodPost, "/fr/", nil)
		require.Equal(t, http.StatusMethodNotAllowed, w.Code)
		require.Contains(t, w.Body.String(), "<title>Method not allowed</title>")
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		t.Parallel()

		w := do(app, http.MethodGet, "/boom", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.Contains(t, w.Body.String(), "<h1>Something went wrong</h1>")
		require.NotContains(t, w.Body.String(), "database unavailable")
	})

	t.Run("panic", func(t *testing.T) {
		t.Parallel()

		w := do(app, http.MethodGet, "/panic", nil)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.NotContains(t, w.Body.String(), "unreachable state")
	})
}

func TestPageCache(t *testing.T) {
	t.Parallel()

	pages := cache.New()
	app := newApp(t, handlers.WithPageCache(pages))

	first := do(app, http.MethodGet, "/fr/community", nil)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, 1, pages.Len())

	second := do(app, http.MethodGet, "/fr/community", nil)
	require.Equal(t, first.Body.String(), second.Body.String())
	require.Equal(t, "fr", second.Header().Get("Content-Language"))

	cached, err := pages.Get("fr/community")
	require.NoError(t, err)
	require.Equal(t, first.Body.String(), string(cached))

	require.Equal(t, http.StatusOK, do(app, http.MethodGet, "/de/", nil).Code)
	require.Equal(t, 2, pages.Len())
}
