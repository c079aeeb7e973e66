package sanitizer

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy drops every tag.
var textPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// inlinePolicy keeps the phrasing elements translators put inside a
// sentence. Links must use http, https or mailto and get rel="nofollow".
var inlinePolicy = sync.OnceValue(func() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements("br", "strong", "b", "em", "i", "code", "kbd")
	p.AllowAttrs("href").OnElements("a")
	p.RequireNoFollowOnLinks(true)
	return p
})

// StripHTML removes every tag and escapes what remains, so the result is
// safe to place into HTML as text. Message arguments taken from template
// data go through it.
func StripHTML(s string) string {
	return textPolicy().Sanitize(s)
}

// SanitizeHTML keeps inline formatting (a, strong, em, code, kbd, br) and
// removes everything else, including scripts, event handlers and
// javascript: URLs.
func SanitizeHTML(s string) string {
	return inlinePolicy().Sanitize(s)
}
