package l10n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the Accept-Language header we parse.
const maxAcceptLanguageLength = 4096

// Negotiate picks the locale that best serves an Accept-Language header.
// It returns the default locale when the header is empty, malformed or
// matches nothing.
func (r *Resolver) Negotiate(header string) Locale {
	def := r.registry.DefaultLocale()
	if header == "" {
		return def
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return def
	}
	_, idx, conf := r.matcher().Match(tags...)
	if conf == language.No {
		return def
	}
	return r.supported[idx]
}

func (r *Resolver) matcher() language.Matcher {
	r.once.Do(func() {
		r.supported = r.registry.Locales()
		tags := make([]language.Tag, len(r.supported))
		for i, loc := range r.supported {
			// Registry locales were validated by language.Parse.
			tags[i] = language.MustParse(loc.String())
		}
		r.match = language.NewMatcher(tags)
	})
	return r.match
}
