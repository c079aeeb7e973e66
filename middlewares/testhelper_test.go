package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/Lsnsh/www.rust-lang.org/internal"
)

// routes adapts a function to the Handler interface.
type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

// serve builds an App that runs mw in front of h at GET pattern and serves
// a request for target.
func serve(pattern, target string, mw internal.Middleware, h internal.HandlerFunc, opts ...internal.Option) *httptest.ResponseRecorder {
	return serveRequest(pattern, httptest.NewRequest(http.MethodGet, target, nil), mw, h, opts...)
}

func serveRequest(pattern string, req *http.Request, mw internal.Middleware, h internal.HandlerFunc, opts ...internal.Option) *httptest.ResponseRecorder {
	opts = append(opts, internal.WithHandlers(routes(func(r internal.Router) {
		r.GET(pattern, h, mw)
	})))
	w := httptest.NewRecorder()
	internal.New(opts...).ServeHTTP(w, req)
	return w
}
