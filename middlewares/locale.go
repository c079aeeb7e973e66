package middlewares

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Lsnsh/www.rust-lang.org/internal"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/pkg/logger"
)

// DefaultLocaleParam is the route parameter holding the locale segment.
const DefaultLocaleParam = "locale"

// LocaleConfig configures the locale middleware.
type LocaleConfig struct {
	Extractor internal.Extractor
}

// LocaleOption configures LocaleConfig.
type LocaleOption func(*LocaleConfig)

// WithLocaleExtractor sets the sources the raw locale segment is read from.
func WithLocaleExtractor(ext internal.Extractor) LocaleOption {
	return func(cfg *LocaleConfig) {
		cfg.Extractor = ext
	}
}

// Locale returns middleware for localized routes. It resolves the {locale}
// route parameter against the supported locales and stores the locale and
// the formatter in the request context for rendering.
//
// Unsupported locales end the request with a 404 HTTPError.
func Locale(resolver *l10n.Resolver, formatter *l10n.Formatter, opts ...LocaleOption) internal.Middleware {
	cfg := &LocaleConfig{
		Extractor: internal.NewExtractor(internal.FromParam(DefaultLocaleParam)),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			raw, _ := cfg.Extractor.Extract(c)
			loc, err := resolver.Resolve(raw)
			if err != nil {
				if errors.Is(err, l10n.ErrUnsupportedLocale) {
					c.LogDebug("unsupported locale", slog.String("raw", raw))
					return internal.ErrNotFound("page not found",
						internal.WithError(err),
						internal.WithMessageID("error-not-found"),
						internal.WithRequestID(GetRequestID(c)),
					)
				}
				return err
			}

			ctx := l10n.WithLocale(c.Context(), loc)
			ctx = l10n.WithFormatter(ctx, formatter)
			c.SetContext(ctx)
			c.SetHeader("Content-Language", loc.String())

			return next(c)
		}
	}
}

// LocaleExtractor returns a ContextExtractor that adds "locale" to log
// entries emitted inside localized routes.
func LocaleExtractor() logger.ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if loc, ok := l10n.LocaleFromContext(ctx); ok {
			return slog.String("locale", loc.String()), true
		}
		return slog.Attr{}, false
	}
}
