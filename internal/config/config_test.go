package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Lsnsh/www.rust-lang.org/internal/config"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
)

func TestLoadFrom(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadFrom(map[string]string{})
		require.NoError(t, err)
		require.Equal(t, ":8080", cfg.Addr)
		require.Empty(t, cfg.LocalesDir)
		require.Equal(t, l10n.DefaultLocale, cfg.DefaultLocale)
		require.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
		require.Equal(t, "/metrics", cfg.MetricsPath)
		require.Equal(t, 256, cfg.PageCache)
		require.Equal(t, "info", cfg.Log.Level)
		require.Empty(t, cfg.Log.Sentry.DSN)
		require.Equal(t, "production", cfg.Log.Sentry.Environment)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.LoadFrom(map[string]string{
			"WWW_ADDR":             "127.0.0.1:9000",
			"WWW_LOCALES_DIR":      "/srv/locales",
			"WWW_DEFAULT_LOCALE":   "fr",
			"WWW_SHUTDOWN_TIMEOUT": "5s",
			"WWW_LOG_LEVEL":        "debug",
			"WWW_PAGE_CACHE":       "0",
			"SENTRY_ENVIRONMENT":   "staging",
		})
		require.NoError(t, err)
		require.Equal(t, "127.0.0.1:9000", cfg.Addr)
		require.Equal(t, "/srv/locales", cfg.LocalesDir)
		require.Equal(t, l10n.Locale("fr"), cfg.DefaultLocale)
		require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
		require.Equal(t, "debug", cfg.Log.Level)
		require.Zero(t, cfg.PageCache)
		require.Equal(t, "staging", cfg.Log.Sentry.Environment)
	})

	t.Run("invalid duration", func(t *testing.T) {
		t.Parallel()

		_, err := config.LoadFrom(map[string]string{"WWW_SHUTDOWN_TIMEOUT": "soon"})
		require.Error(t, err)
	})
}
