package middleware

import (
	"net/http"
	"time"

	"github.com/vyrodovalexey/avcatalog/internal/observability"
	"github.com/vyrodovalexey/avcatalog/internal/util"
)

// Metrics returns a middleware that records request count and duration
// per route. The route label is filled in by the router downstream; an
// unmatched request is labeled "unmatched".
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			label := &util.RouteLabel{}
			r = r.WithContext(util.ContextWithRouteLabel(r.Context(), label))

			rw := util.NewStatusCapturingResponseWriter(w)

			next.ServeHTTP(rw, r)

			route := label.Get()
			if route == "" {
				route = "unmatched"
			}

			observability.GetMetrics().RecordRequest(route, rw.StatusCode, time.Since(start))
		})
	}
}
