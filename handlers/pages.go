// Package handlers serves the site's localized pages.
package handlers

import (
	"net/http"

	"github.com/a-h/templ"

	www "github.com/Lsnsh/www.rust-lang.org"
	"github.com/Lsnsh/www.rust-lang.org/middlewares"
	"github.com/Lsnsh/www.rust-lang.org/pkg/cache"
	"github.com/Lsnsh/www.rust-lang.org/pkg/l10n"
	"github.com/Lsnsh/www.rust-lang.org/views"
)

// Defaults shown on the landing and community pages.
const (
	DefaultVersion = "1.90.0"
	DefaultTeams   = 25
)

// LanguageQuery lets visitors override Accept-Language on the root redirect.
const LanguageQuery = "lang"

// Pages handles the localized site pages.
type Pages struct {
	resolver  *l10n.Resolver
	formatter *l10n.Formatter
	version   string
	teams     int
	languages www.Extractor
	cache     *cache.Pages
}

// PagesOption configures Pages.
type PagesOption func(*Pages)

// WithVersion sets the release advertised on the landing page.
func WithVersion(v string) PagesOption {
	return func(p *Pages) {
		if v != "" {
			p.version = v
		}
	}
}

// WithTeams sets the team count shown on the community page.
func WithTeams(n int) PagesOption {
	return func(p *Pages) {
		if n >= 0 {
			p.teams = n
		}
	}
}

// WithPageCache serves rendered pages from c. Pages are rendered once per
// locale.
func WithPageCache(c *cache.Pages) PagesOption {
	return func(p *Pages) {
		p.cache = c
	}
}

// NewPages creates the page handler.
func NewPages(resolver *l10n.Resolver, formatter *l10n.Formatter, opts ...PagesOption) *Pages {
	p := &Pages{
		resolver:  resolver,
		formatter: formatter,
		version:   DefaultVersion,
		teams:     DefaultTeams,
		languages: www.NewExtractor(
			www.FromQuery(LanguageQuery),
			www.FromHeader("Accept-Language"),
		),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Routes declares the site routes.
// Implements the www.Handler interface.
func (h *Pages) Routes(r www.Router) {
	r.GET("/", h.root)
	r.Route("/{"+middlewares.DefaultLocaleParam+"}", func(r www.Router) {
		r.Use(middlewares.Locale(h.resolver, h.formatter))
		r.GET("/", h.index)
		r.GET("/community", h.community)
	})
}

// root redirects to the best locale for the visitor.
func (h *Pages) root(c www.Context) error {
	raw, _ := h.languages.Extract(c)
	loc := h.resolver.Negotiate(raw)

	c.SetHeader("Vary", "Accept-Language")
	return c.Redirect(http.StatusFound, "/"+loc.String()+"/")
}

func (h *Pages) index(c www.Context) error {
	return h.render(c, "/", views.Layout(h.page("index-title", "/"), views.Index(h.version)))
}

func (h *Pages) community(c www.Context) error {
	return h.render(c, "/community", views.Layout(h.page("community-title", "/community"), views.Community(h.teams)))
}

// render writes a localized page, through the page cache when one is set.
func (h *Pages) render(c www.Context, path string, page templ.Component) error {
	if h.cache == nil {
		return c.Render(http.StatusOK, page)
	}
	html, err := h.cache.Render(c.Context(), c.Locale().String()+path, page)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, templ.Raw(string(html)))
}

func (h *Pages) page(titleID, path string) views.Page {
	return views.Page{
		TitleID: titleID,
		Path:    path,
		Locales: h.resolver.Locales(),
	}
}
