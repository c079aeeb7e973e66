package views

import (
	"github.com/a-h/templ"

	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10ntempl"
)

// features are the landing page highlights. Each id has a .description
// attribute.
var features = []string{"index-performance", "index-reliability", "index-productivity"}

// Index renders the landing page body.
func Index(version string) templ.Component {
	items := make([]templ.Component, 0, len(features))
	for _, id := range features {
		items = append(items, element("li", "",
			element("h3", "", l10ntempl.T(id)),
			element("p", "", l10ntempl.T(id+".description")),
		))
	}

	return join(
		element("section", `class="hero"`,
			element("h1", "", l10ntempl.T("index-title")),
			element("p", `class="tagline"`, l10ntempl.T("index-tagline")),
			link(InstallURL, l10ntempl.T("index-get-started")),
			element("p", `class="version"`, l10ntempl.T("index-version", l10n.Hash{"version": version})),
		),
		element("section", `class="why"`,
			element("h2", "", l10ntempl.T("index-why")),
			element("ul", "", items...),
		),
		element("p", "", l10ntempl.Block("index-learn-more", nil,
			l10ntempl.Param("book", link(BookURL, element("cite", "", raw("The Rust Programming Language")))),
		)),
	)
}

// Community renders the community page body. teams is the number of
// teams listed in the governance page.
func Community(teams int) templ.Component {
	return join(
		element("h1", "", l10ntempl.T("community-title")),
		element("p", "", l10ntempl.T("community-intro")),
		element("p", "", l10ntempl.T("community-teams", l10n.Hash{"count": teams})),
		element("p", "", l10ntempl.Block("community-conduct", nil,
			l10ntempl.Param("link", link(ConductURL, l10ntempl.T("community-conduct-link"))),
		)),
	)
}

// NotFound renders the 404 page body for path.
func NotFound(home, path string) templ.Component {
	return join(
		element("h1", "", l10ntempl.T("error-not-found")),
		element("p", "", l10ntempl.T("error-not-found-description", l10n.Hash{"path": path})),
		element("p", "", link(home, l10ntempl.T("error-go-home"))),
	)
}

// ServerError renders the 500 page body.
func ServerError(home string) templ.Component {
	return join(
		element("h1", "", l10ntempl.T("error-internal")),
		element("p", "", link(home, l10ntempl.T("error-go-home"))),
	)
}
