package l10n

import (
	"fmt"
	"net/url"
	"sync"

	"golang.org/x/text/language"
)

// Resolver turns untrusted locale tokens into known locales.
type Resolver struct {
	registry *Registry

	once      sync.Once
	supported []Locale
	match     language.Matcher
}

// NewResolver returns a Resolver accepting the locales of r.
func NewResolver(r *Registry) *Resolver {
	return &Resolver{registry: r}
}

// Resolve percent-decodes raw and returns it as a Locale if it names a
// locale of the registry exactly. Matching is case-sensitive.
func (r *Resolver) Resolve(raw string) (Locale, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, raw)
	}
	loc := Locale(decoded)
	if _, ok := r.registry.Bundle(loc); !ok || decoded == "" {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, decoded)
	}
	return loc, nil
}

// Locales returns the locales the resolver accepts.
func (r *Resolver) Locales() []Locale {
	return r.registry.Locales()
}

// DefaultLocale returns the registry's fallback locale.
func (r *Resolver) DefaultLocale() Locale {
	return r.registry.DefaultLocale()
}
