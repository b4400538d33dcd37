package server

import (
	"net/http"

	"github.com/vyrodovalexey/avcatalog/internal/catalog"
	"github.com/vyrodovalexey/avcatalog/internal/config"
	"github.com/vyrodovalexey/avcatalog/internal/middleware"
	"github.com/vyrodovalexey/avcatalog/internal/observability"
)

// Route names used for metrics labels.
const (
	RouteHome = "home"
	RouteData = "data"
)

// Handler assembles the route table and middleware chain into the
// http.Handler served by the main listener.
type Handler struct {
	router   *Router
	homePage *StaticPage
	chain    http.Handler
}

// NewHandler builds the request handler: a router over the home and
// data routes wrapped in the middleware chain.
func NewHandler(
	cfg *config.Config,
	store catalog.Store,
	homePage *StaticPage,
	logger observability.Logger,
) *Handler {
	dataHandler := catalog.NewHandler(store, catalog.WithHandlerLogger(logger))

	router := NewRouter([]Route{
		{Name: RouteHome, Path: "/", Handler: homePage},
		{Name: RouteData, Path: "/api", Handler: dataHandler},
	})

	var h http.Handler = router
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			middleware.WithRateLimiterLogger(logger),
		)
		h = limiter.Middleware()(h)
	}
	h = middleware.Metrics()(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID()(h)
	h = middleware.Recovery(logger)(h)

	return &Handler{
		router:   router,
		homePage: homePage,
		chain:    h,
	}
}

// Router returns the underlying route table.
func (h *Handler) Router() *Router {
	return h.router
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.chain.ServeHTTP(w, r)
}
