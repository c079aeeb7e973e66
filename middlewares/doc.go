// Package middlewares provides HTTP middleware for the localized site.
//
// # Request ID
//
// RequestID assigns a unique ID to each request for tracing and debugging.
// It reuses an upstream X-Request-ID or X-Correlation-ID header and falls
// back to a random UUID.
//
//	app := www.New(
//	    www.WithLogger(logger.New(cfg.Log, middlewares.RequestIDExtractor())),
//	    www.WithMiddleware(
//	        middlewares.RequestID(),
//	    ),
//	)
//
// # Recover
//
// Recover catches panics and converts them to a PanicError for the global
// ErrorHandler. Rendering a localized template without a locale in the
// render context panics, so Recover belongs in front of every page route.
//
// # Locale
//
// Locale resolves the {locale} route segment against the supported locales.
// On success the locale and formatter are stored in the request context and
// Content-Language is set; unsupported segments end the request with a 404
// HTTPError.
//
//	r.Route("/{locale}", func(r www.Router) {
//	    r.Use(middlewares.Locale(resolver, formatter))
//	    r.GET("/", pages.index)
//	})
//
// Use LocaleExtractor with logger.New to add the resolved locale to every
// log entry emitted inside localized routes.
package middlewares
