// Package l10n resolves localized text for server-rendered pages.
//
// Resources live in a tree with one directory per locale:
//
//	locales/
//	  en-US/main.ftl
//	  en-US/footer.toml
//	  fr/main.ftl
//
// Files ending in .toml, .yaml, .yml or .json are go-i18n message catalogs.
// Every other file uses the Fluent resource syntax:
//
//	-brand = Rust
//	greeting = Hello, { $name }!
//	tagline = { -brand } is fast.
//	emails = { $count ->
//	    [one] One new email.
//	   *[other] { $count } new emails.
//	}
//	login = Log in
//	    .title = Log in to your account
//
// Messages are compiled into go-i18n bundles, one per locale. Plural
// selection follows CLDR rules for the locale.
//
// # Usage
//
//	reg, err := l10n.Open(l10n.Root("locales"), l10n.WithDefaultLocale("en-US"))
//	if err != nil {
//		return err
//	}
//	resolver := l10n.NewResolver(reg)
//	formatter := l10n.NewFormatter(reg)
//
//	loc, err := resolver.Resolve(chi.URLParam(r, "locale"))
//	if err != nil {
//		// 404
//	}
//	s := formatter.Format(loc, "greeting", l10n.Args{"name": l10n.String("Ada")})
//
// A message missing from a locale is taken from the default locale. A
// message missing from both renders as "Unknown localization <id>".
//
// Template helpers hand their parsed invocation to Bind, which extracts the
// message id and the arguments, rendering nested textparam blocks through
// the host renderer.
package l10n
