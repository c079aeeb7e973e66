package l10n

import "context"

type (
	localeKey    struct{}
	formatterKey struct{}
)

// WithLocale stores the active locale in the render context.
func WithLocale(ctx context.Context, loc Locale) context.Context {
	return context.WithValue(ctx, localeKey{}, loc)
}

// LocaleFromContext returns the active locale, if any.
func LocaleFromContext(ctx context.Context) (Locale, bool) {
	loc, ok := ctx.Value(localeKey{}).(Locale)
	return loc, ok && loc != ""
}

// MustLocale returns the active locale and panics when the render context
// carries none. A missing locale is an integration bug, not a request error.
func MustLocale(ctx context.Context) Locale {
	loc, ok := LocaleFromContext(ctx)
	if !ok {
		panic("l10n: locale not set in render context")
	}
	return loc
}

// WithFormatter stores the formatter in the render context.
func WithFormatter(ctx context.Context, f *Formatter) context.Context {
	return context.WithValue(ctx, formatterKey{}, f)
}

// FormatterFromContext returns the formatter stored by WithFormatter.
func FormatterFromContext(ctx context.Context) (*Formatter, bool) {
	f, ok := ctx.Value(formatterKey{}).(*Formatter)
	return f, ok && f != nil
}

// MustFormatter is like FormatterFromContext but panics when no formatter is set.
func MustFormatter(ctx context.Context) *Formatter {
	f, ok := FormatterFromContext(ctx)
	if !ok {
		panic("l10n: formatter not set in render context")
	}
	return f
}
