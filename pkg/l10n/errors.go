package l10n

import "errors"

var (
	ErrInvalidResource      = errors.New("l10n: invalid resource")
	ErrInvalidLocale        = errors.New("l10n: invalid locale tag")
	ErrDuplicateMessage     = errors.New("l10n: duplicate message id")
	ErrMissingDefaultLocale = errors.New("l10n: default locale has no resources")
	ErrUnsupportedLocale    = errors.New("l10n: unsupported locale")
	ErrInvocation           = errors.New("l10n: invalid text invocation")
)

// BindError reports a malformed localization invocation in a template.
// It wraps ErrInvocation.
type BindError struct {
	Helper string
	Reason string
}

func (e *BindError) Error() string {
	return "l10n: {{" + e.Helper + "}} " + e.Reason
}

func (e *BindError) Unwrap() error {
	return ErrInvocation
}
