// Package l10ntempl exposes localized text as templ components.
//
// The render context must carry the active locale and formatter
// (l10n.WithLocale and l10n.WithFormatter); the locale middleware sets both.
//
//	l10ntempl.T("greeting", l10n.Hash{"name": user.Name})
//
//	l10ntempl.Block("footer-credit", nil,
//		l10ntempl.Param("team", teamLink()),
//	)
//
// Plain string arguments are stripped to text. Values of type HTML keep
// inline formatting tags. Nested components are rendered once with the same
// context and inserted as-is.
package l10ntempl
