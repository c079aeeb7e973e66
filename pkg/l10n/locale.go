package l10n

// DefaultLocale is the fallback locale used when none is configured.
const DefaultLocale Locale = "en-US"

// Locale is a locale tag known to a Registry, e.g. "en-US".
// Untrusted input becomes a Locale only through Resolver.Resolve.
type Locale string

func (l Locale) String() string {
	return string(l)
}
