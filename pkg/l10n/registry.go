package l10n

import (
	"fmt"
	"io/fs"
	"log/slog"
	"slices"
	"sync"
)

// Registry maps every locale to its Bundle. It is read-only once built and
// safe for concurrent use.
type Registry struct {
	bundles       map[Locale]*Bundle
	locales       []Locale
	defaultLocale Locale
}

// NewRegistry builds one Bundle per locale of res. It fails on duplicate
// message ids within a locale, unresolvable references, invalid locale tags
// and when the default locale has no resources.
func NewRegistry(res Resources, opts ...Option) (*Registry, error) {
	cfg := registryConfig{
		defaultLocale: DefaultLocale,
		logger:        slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	if _, ok := res[cfg.defaultLocale]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingDefaultLocale, cfg.defaultLocale)
	}

	r := &Registry{
		bundles:       make(map[Locale]*Bundle, len(res)),
		defaultLocale: cfg.defaultLocale,
	}
	for loc, set := range res {
		b, err := newBundle(loc, set)
		if err != nil {
			return nil, err
		}
		r.bundles[loc] = b
		if loc != r.defaultLocale {
			r.locales = append(r.locales, loc)
		}
		cfg.logger.Debug("locale bundle built",
			slog.String("locale", loc.String()),
			slog.Int("documents", len(set)),
			slog.Int("messages", len(b.ids)),
		)
	}
	slices.Sort(r.locales)
	r.locales = slices.Insert(r.locales, 0, r.defaultLocale)

	cfg.logger.Info("localization registry ready",
		slog.String("default_locale", r.defaultLocale.String()),
		slog.Int("locales", len(r.locales)),
	)
	return r, nil
}

// Open loads the resource tree in fsys and builds a Registry from it.
func Open(fsys fs.FS, opts ...Option) (*Registry, error) {
	res, err := LoadResources(fsys)
	if err != nil {
		return nil, err
	}
	return NewRegistry(res, opts...)
}

// Lazy returns a function that builds the Registry on first call and returns
// the same result to every caller afterwards, including concurrent ones.
func Lazy(fsys fs.FS, opts ...Option) func() (*Registry, error) {
	return sync.OnceValues(func() (*Registry, error) {
		return Open(fsys, opts...)
	})
}

// Bundle returns the bundle of loc.
func (r *Registry) Bundle(loc Locale) (*Bundle, bool) {
	b, ok := r.bundles[loc]
	return b, ok
}

// DefaultLocale returns the fallback locale.
func (r *Registry) DefaultLocale() Locale {
	return r.defaultLocale
}

// Locales returns every known locale, the default locale first and the rest
// sorted.
func (r *Registry) Locales() []Locale {
	return slices.Clone(r.locales)
}

// Orphaned returns the ids loc defines that the default locale does not.
func (r *Registry) Orphaned(loc Locale) []string {
	return r.diff(loc, r.defaultLocale)
}

// Untranslated returns the ids of the default locale that loc lacks.
func (r *Registry) Untranslated(loc Locale) []string {
	return r.diff(r.defaultLocale, loc)
}

// diff returns the sorted ids present in a but not in b.
func (r *Registry) diff(a, b Locale) []string {
	from, ok := r.bundles[a]
	if !ok {
		return nil
	}
	to, ok := r.bundles[b]

	var out []string
	for _, id := range from.IDs() {
		if !ok || !to.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
