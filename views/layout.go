package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10ntempl"
)

// Layout renders the HTML document around body.
func Layout(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loc := l10n.MustLocale(ctx)

		return join(
			raw(`<!DOCTYPE html><html lang="`+templ.EscapeString(loc.String())+`"><head><meta charset="utf-8">`+
				`<meta name="viewport" content="width=device-width, initial-scale=1.0">`+
				`<link rel="stylesheet" href="`+StylesheetPath+`">`),
			element("title", "", l10ntempl.T(p.TitleID)),
			alternates(p),
			raw(`</head><body>`),
			element("a", `class="skip" href="#main"`, l10ntempl.T("skip-to-content")),
			header(loc, p),
			element("main", `id="main"`, body),
			footer(),
			raw(`</body></html>`),
		).Render(ctx, w)
	})
}

// alternates links every translation of the page for crawlers.
func alternates(p Page) templ.Component {
	parts := make([]templ.Component, 0, len(p.Locales))
	for _, l := range p.Locales {
		parts = append(parts, raw(`<link rel="alternate" hreflang="`+templ.EscapeString(l.String())+
			`" href="`+templ.EscapeString(localePath(l, p.Path))+`">`))
	}
	return join(parts...)
}

func header(loc l10n.Locale, p Page) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		label, err := attr(ctx, "nav-language.label")
		if err != nil {
			return err
		}
		return element("header", "",
			element("nav", "",
				link(localePath(loc, "/"), raw("Rust")),
				link(InstallURL, l10ntempl.T("nav-install")),
				link(BookURL, l10ntempl.T("nav-learn")),
				link(localePath(loc, "/community"), l10ntempl.T("nav-community")),
			),
			languages(label, loc, p),
		).Render(ctx, w)
	})
}

// languages renders the language switcher. The current locale is marked
// with aria-current.
func languages(label string, current l10n.Locale, p Page) templ.Component {
	items := make([]templ.Component, 0, len(p.Locales))
	for _, l := range p.Locales {
		attrs := `href="` + templ.EscapeString(localePath(l, p.Path)) + `" lang="` + templ.EscapeString(l.String()) + `"`
		if l == current {
			attrs += ` aria-current="true"`
		}
		items = append(items, element("li", "", element("a", attrs, raw(templ.EscapeString(l.String())))))
	}
	return element("nav", `aria-label="`+label+`"`,
		element("span", "", l10ntempl.T("nav-language")),
		element("ul", "", items...),
	)
}

func footer() templ.Component {
	return element("footer", "",
		element("p", "", link(HelpURL, l10ntempl.T("footer-get-help"))),
		element("p", "", l10ntempl.T("footer-copyright")),
	)
}
