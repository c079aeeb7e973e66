// Package views renders the site's pages as templ components.
//
// Every component expects a render context prepared by the locale
// middleware. Message text is produced through l10ntempl, so inline
// arguments are sanitized and nested components render in the same context.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10ntempl"
)

// External destinations linked from the pages.
const (
	InstallURL = "https://www.rust-lang.org/tools/install"
	BookURL    = "https://doc.rust-lang.org/book/"
	ConductURL = "https://www.rust-lang.org/policies/code-of-conduct"
	HelpURL    = "https://users.rust-lang.org/"
)

// Page describes the chrome around a page body.
type Page struct {
	// TitleID is the message id of the document title.
	TitleID string
	// Path is the page path below the locale segment, e.g. "/community".
	Path string
	// Locales lists the locales offered in the language switcher.
	Locales []l10n.Locale
}

// raw writes static markup.
func raw(s string) templ.Component {
	return templ.Raw(s)
}

// join renders components in order.
func join(parts ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range parts {
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// element wraps body in a tag with pre-escaped attributes.
func element(tag, attrs string, body ...templ.Component) templ.Component {
	open := "<" + tag
	if attrs != "" {
		open += " " + attrs
	}
	parts := make([]templ.Component, 0, len(body)+2)
	parts = append(parts, raw(open+">"))
	parts = append(parts, body...)
	parts = append(parts, raw("</"+tag+">"))
	return join(parts...)
}

// link renders an anchor around body.
func link(href string, body ...templ.Component) templ.Component {
	return element("a", `href="`+templ.EscapeString(href)+`"`, body...)
}

// localePath builds a site path for loc.
func localePath(loc l10n.Locale, path string) string {
	if path == "" {
		path = "/"
	}
	return "/" + loc.String() + path
}

// attr formats message id for use inside an HTML attribute.
func attr(ctx context.Context, id string) (string, error) {
	s, err := l10ntempl.String(ctx, id)
	if err != nil {
		return "", err
	}
	return templ.EscapeString(s), nil
}
