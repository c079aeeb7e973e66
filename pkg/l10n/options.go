package l10n

import (
	"fmt"
	"log/slog"
)

type registryConfig struct {
	defaultLocale Locale
	logger        *slog.Logger
}

// Option configures a Registry.
type Option func(*registryConfig) error

// WithDefaultLocale sets the locale used for fallback lookups.
// Default: en-US.
func WithDefaultLocale(tag string) Option {
	return func(c *registryConfig) error {
		if tag == "" {
			return fmt.Errorf("%w: empty default locale", ErrInvalidLocale)
		}
		c.defaultLocale = Locale(tag)
		return nil
	}
}

// WithLogger sets the logger used while building the registry.
func WithLogger(l *slog.Logger) Option {
	return func(c *registryConfig) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// FormatterOption configures a Formatter.
type FormatterOption func(*Formatter)

// WithObserver registers o to receive fallback and missing-message events.
func WithObserver(o Observer) FormatterOption {
	return func(f *Formatter) {
		if o != nil {
			f.observer = o
		}
	}
}

// WithFormatterLogger sets the logger that receives discarded formatting errors.
func WithFormatterLogger(l *slog.Logger) FormatterOption {
	return func(f *Formatter) {
		if l != nil {
			f.logger = l
		}
	}
}
