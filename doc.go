// Package www serves the localized project website.
//
// The package is a thin facade over the HTTP application in internal/.
// Pages are plain Go handlers; text comes from Fluent resources loaded by
// [github.com/Lsnsh/www.rust-lang.org/pkg/l10n] and is rendered inside templ
// components by [github.com/Lsnsh/www.rust-lang.org/pkg/l10ntempl].
//
// # Quick Start
//
//	reg, err := l10n.Open(locales.FS())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	formatter := l10n.NewFormatter(reg)
//	resolver := l10n.NewResolver(reg)
//
//	app := www.New(
//	    www.WithMiddleware(middlewares.Recover(), middlewares.RequestID()),
//	    www.WithHandlers(handlers.NewPages(resolver, formatter)),
//	)
//
//	if err := app.Run(":8080"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Handlers
//
// Handlers implement the [Handler] interface to declare routes. Localized
// pages live under a {locale} segment guarded by the locale middleware:
//
//	func (h *Pages) Routes(r www.Router) {
//	    r.GET("/", h.root)
//	    r.Route("/{locale}", func(r www.Router) {
//	        r.Use(middlewares.Locale(h.resolver, h.formatter))
//	        r.GET("/", h.index)
//	    })
//	}
//
//	func (h *Pages) index(c www.Context) error {
//	    return c.Render(http.StatusOK, views.Layout(page, views.Index(h.version)))
//	}
//
// Inside a localized route, [Context] exposes the request locale and
// formats messages directly:
//
//	c.Localize("index-title")
//
// # Shutdown
//
// Run handles SIGINT/SIGTERM for graceful shutdown. Register cleanup with
// [ShutdownHook]:
//
//	app.Run(":8080", www.ShutdownHook(func(ctx context.Context) error {
//	    return logger.Flush(ctx, 2*time.Second)
//	}))
//
// # Escape Hatch
//
// [App.Router] returns the underlying chi router for mounting plain
// http.Handlers.
package www
