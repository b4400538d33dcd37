// Package server provides the route table, static responders, and the
// HTTP listener for the catalog server.
package server

import (
	"net/http"

	"github.com/vyrodovalexey/avcatalog/internal/util"
)

// Route is one entry of the route table: a literal path and the handler
// serving it.
type Route struct {
	Name    string
	Path    string
	Handler http.Handler
}

// Router dispatches requests over an ordered route table. Matching is
// exact on the request path, first match wins; the method is not
// consulted. The table is built before serving starts and is immutable
// afterwards.
type Router struct {
	routes   []Route
	notFound http.Handler
}

// RouterOption is a functional option for configuring a router.
type RouterOption func(*Router)

// WithNotFoundHandler sets the handler for unmatched paths.
func WithNotFoundHandler(h http.Handler) RouterOption {
	return func(r *Router) {
		r.notFound = h
	}
}

// NewRouter creates a router with the given routes, in order.
func NewRouter(routes []Route, opts ...RouterOption) *Router {
	r := &Router{
		routes:   routes,
		notFound: NotFoundHandler(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Match returns the first route whose path equals the request path.
func (r *Router) Match(path string) (*Route, bool) {
	for i := range r.routes {
		if r.routes[i].Path == path {
			return &r.routes[i], true
		}
	}
	return nil, false
}

// Routes returns the route table in match order.
func (r *Router) Routes() []Route {
	routes := make([]Route, len(r.routes))
	copy(routes, r.routes)
	return routes
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	route, ok := r.Match(req.URL.Path)
	if !ok {
		r.notFound.ServeHTTP(w, req)
		return
	}

	if label := util.RouteLabelFromContext(req.Context()); label != nil {
		label.Set(route.Name)
	}

	route.Handler.ServeHTTP(w, req)
}
