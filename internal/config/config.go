// Package config loads the server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/pkg/logger"
)

// Config holds the server configuration.
type Config struct {
	Addr            string        `env:"WWW_ADDR" envDefault:":8080"`
	LocalesDir      string        `env:"WWW_LOCALES_DIR"`
	DefaultLocale   l10n.Locale   `env:"WWW_DEFAULT_LOCALE" envDefault:"en-US"`
	ShutdownTimeout time.Duration `env:"WWW_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	MetricsPath     string        `env:"WWW_METRICS_PATH" envDefault:"/metrics"`
	PageCache       int           `env:"WWW_PAGE_CACHE" envDefault:"256"`
	Log             logger.Config
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// LoadFrom parses Config from the given variables instead of the process
// environment.
func LoadFrom(vars map[string]string) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](env.Options{Environment: vars})
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
