package internal

// Handler declares routes on a router.
//
// Example:
//
//	type Pages struct {
//	    resolver *l10n.Resolver
//	}
//
//	func (h *Pages) Routes(r www.Router) {
//	    r.GET("/", h.root)
//	    r.Route("/{locale}", func(r www.Router) {
//	        r.GET("/", h.index)
//	    })
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc is the signature for route handlers.
// It receives a Context and returns an error.
// Returning a non-nil error triggers the error handling middleware.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc to add cross-cutting concerns.
// Middleware can inspect/modify the request, short-circuit processing,
// or wrap the response.
//
// Example:
//
//	func NoIndex(next www.HandlerFunc) www.HandlerFunc {
//	    return func(c www.Context) error {
//	        c.SetHeader("X-Robots-Tag", "noindex")
//	        return next(c)
//	    }
//	}
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler handles errors returned from handlers.
type ErrorHandler func(Context, error) error
