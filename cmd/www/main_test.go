package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Lsnsh/www.rust-lang.org/internal/config"
	"github.com/Lsnsh/www.rust-lang.org/pkg/logger"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	for name, data := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	}
	return dir
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestCheck(t *testing.T) {
	t.Run("embedded resources", func(t *testing.T) {
		out, _, err := runCommand(t, "check")
		require.NoError(t, err)
		require.Contains(t, out, "info: fr:")
		require.Contains(t, out, "checked 3 locales")
	})

	t.Run("orphaned messages fail", func(t *testing.T) {
		dir := writeTree(t, map[string]string{
			"en-US/main.ftl": "hello = Hello\nbye = Bye\n",
			"fr/main.ftl":    "hello = Bonjour\nextra = En trop\n",
		})

		out, errOut, err := runCommand(t, "check", "--locales-dir", dir)
		require.Error(t, err)
		require.Contains(t, err.Error(), "1 messages missing from en-US")
		require.Contains(t, errOut, `error: fr: message "extra" is not defined in en-US`)
		require.Contains(t, out, "info: fr: 1 untranslated: bye")
	})

	t.Run("default locale flag", func(t *testing.T) {
		dir := writeTree(t, map[string]string{
			"en-US/main.ftl": "hello = Hello\n",
			"fr/main.ftl":    "hello = Bonjour\n",
		})

		out, _, err := runCommand(t, "check", "--locales-dir", dir, "--default-locale", "fr")
		require.NoError(t, err)
		require.Contains(t, out, "checked 2 locales")
	})

	t.Run("invalid resources fail", func(t *testing.T) {
		dir := writeTree(t, map[string]string{
			"en-US/main.ftl": "hello = { $name\n",
		})

		_, _, err := runCommand(t, "check", "--locales-dir", dir)
		require.Error(t, err)
	})

	t.Run("missing default locale fails", func(t *testing.T) {
		dir := writeTree(t, map[string]string{
			"fr/main.ftl": "hello = Bonjour\n",
		})

		_, _, err := runCommand(t, "check", "--locales-dir", dir)
		require.Error(t, err)
	})
}

func TestNewApp(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	app, err := newApp(cfg, logger.NewNope())
	require.NoError(t, err)

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	require.Equal(t, http.StatusOK, get("/health/ready").Code)
	require.Equal(t, http.StatusFound, get("/").Code)
	require.Equal(t, http.StatusOK, get("/de/").Code)
	require.Equal(t, http.StatusNotFound, get("/xx/").Code)

	css := get("/static/site.css")
	require.Equal(t, http.StatusOK, css.Code)
	require.Contains(t, css.Header().Get("Content-Type"), "text/css")
	require.Equal(t, http.StatusNotFound, get("/static/").Code)

	body := get("/metrics").Body.String()
	require.Contains(t, body, `l10n_fallback_total{locale="de"}`)
	require.Contains(t, body, "http_requests_total")
}

func TestNewAppInvalidDefaultLocale(t *testing.T) {
	t.Parallel()

	cfg, err := config.LoadFrom(map[string]string{"WWW_DEFAULT_LOCALE": "es"})
	require.NoError(t, err)

	_, err = newApp(cfg, logger.NewNope())
	require.Error(t, err)
}
