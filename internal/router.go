package internal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router is the interface handlers use to declare routes.
// The site only serves documents, so only safe methods are exposed.
type Router interface {
	// GET registers a handler for GET requests.
	GET(path string, h HandlerFunc, mw ...Middleware)

	// HEAD registers a handler for HEAD requests.
	HEAD(path string, h HandlerFunc, mw ...Middleware)

	// Group creates an inline route group sharing middleware but no prefix.
	Group(fn func(r Router))

	// Route creates a route group under a pattern prefix, e.g. "/{locale}".
	// Middleware added inside fn runs only for requests under the prefix,
	// including ones that end in the not-found handler.
	Route(pattern string, fn func(r Router))

	// Use appends middleware to the router's middleware stack.
	Use(mw ...Middleware)

	// Mount attaches an http.Handler at the given pattern.
	Mount(pattern string, h http.Handler)
}

// routerAdapter wraps chi.Router to implement the Router interface.
type routerAdapter struct {
	router chi.Router
	app    *App
}

func (r *routerAdapter) GET(path string, h HandlerFunc, mw ...Middleware) {
	r.router.Get(path, r.handle(h, mw))
}

func (r *routerAdapter) HEAD(path string, h HandlerFunc, mw ...Middleware) {
	r.router.Head(path, r.handle(h, mw))
}

func (r *routerAdapter) Group(fn func(Router)) {
	r.router.Group(func(cr chi.Router) {
		fn(r.child(cr))
	})
}

func (r *routerAdapter) Route(pattern string, fn func(Router)) {
	r.router.Route(pattern, func(cr chi.Router) {
		fn(r.child(cr))
	})
}

func (r *routerAdapter) Use(mw ...Middleware) {
	for _, m := range mw {
		r.router.Use(r.app.adaptMiddleware(m))
	}
}

func (r *routerAdapter) Mount(pattern string, h http.Handler) {
	r.router.Mount(pattern, h)
}

func (r *routerAdapter) child(cr chi.Router) *routerAdapter {
	return &routerAdapter{router: cr, app: r.app}
}

// handle chains route middleware so the first one listed runs first.
func (r *routerAdapter) handle(h HandlerFunc, mw []Middleware) http.HandlerFunc {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return r.app.wrapHandler(h)
}

// adaptMiddleware converts a Middleware to chi middleware. Changes the
// middleware makes to the request context are passed on to next.
func (a *App) adaptMiddleware(mw Middleware) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		chain := mw(func(c Context) error {
			next.ServeHTTP(c.Response(), c.Request())
			return nil
		})
		return a.wrapHandler(chain)
	}
}
