package l10n

import (
	"log/slog"
)

// Observer receives lookup events from a Formatter. Implementations must be
// safe for concurrent use.
type Observer interface {
	// Fallback is called when id was formatted from the default locale
	// because loc does not define it.
	Fallback(loc Locale, id string)
	// Missing is called when neither loc nor the default locale define id.
	Missing(loc Locale, id string)
}

type nopObserver struct{}

func (nopObserver) Fallback(Locale, string) {}
func (nopObserver) Missing(Locale, string)  {}

// Formatter resolves messages with fallback to the default locale.
type Formatter struct {
	registry *Registry
	observer Observer
	logger   *slog.Logger
}

// NewFormatter returns a Formatter over r.
func NewFormatter(r *Registry, opts ...FormatterOption) *Formatter {
	f := &Formatter{
		registry: r,
		observer: nopObserver{},
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format returns message id of loc rendered with args. When loc lacks the
// message the default locale is used. When both lack it the result is
// "Unknown localization <id>". Formatting problems never fail the call.
func (f *Formatter) Format(loc Locale, id string, args Args) string {
	if out, ok := f.format(loc, id, args); ok {
		return out
	}
	if def := f.registry.DefaultLocale(); loc != def {
		if out, ok := f.format(def, id, args); ok {
			f.observer.Fallback(loc, id)
			return out
		}
	}
	f.observer.Missing(loc, id)
	return "Unknown localization " + id
}

func (f *Formatter) format(loc Locale, id string, args Args) (string, bool) {
	b, ok := f.registry.Bundle(loc)
	if !ok || !b.Has(id) {
		return "", false
	}
	out, errs := b.Format(id, args)
	for _, err := range errs {
		f.logger.Debug("localization formatting error",
			slog.String("locale", loc.String()),
			slog.String("id", id),
			slog.String("error", err.Error()),
		)
	}
	return out, true
}

// Registry returns the registry the formatter reads from.
func (f *Formatter) Registry() *Registry {
	return f.registry
}
