package internal

import "strings"

// ExtractorSource reads one candidate value from a request.
// It reports false when the request does not carry the value.
type ExtractorSource = func(Context) (string, bool)

// Extractor reads a value from the first source that provides one.
// Pages use it to pick a language hint from ?lang= before Accept-Language.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor over sources in priority order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first value that is non-blank after trimming
// surrounding whitespace.
func (e Extractor) Extract(c Context) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(c); ok {
			return v, true
		}
	}
	return "", false
}

// FromHeader reads a request header.
func FromHeader(name string) ExtractorSource {
	return lookup(name, Context.Header)
}

// FromQuery reads a query parameter.
func FromQuery(name string) ExtractorSource {
	return lookup(name, Context.Query)
}

// FromParam reads a route parameter such as {locale}.
func FromParam(name string) ExtractorSource {
	return lookup(name, Context.Param)
}

func lookup(name string, get func(Context, string) string) ExtractorSource {
	return func(c Context) (string, bool) {
		v := strings.TrimSpace(get(c, name))
		return v, v != ""
	}
}
