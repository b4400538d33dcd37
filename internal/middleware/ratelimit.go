package middleware

import (
	"io"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/vyrodovalexey/avcatalog/internal/observability"
)

// RateLimiter provides global request rate limiting with a token
// bucket.
type RateLimiter struct {
	limiter *rate.Limiter
	logger  observability.Logger
}

// RateLimiterOption is a functional option for configuring the rate
// limiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterLogger sets the logger for the rate limiter.
func WithRateLimiterLogger(logger observability.Logger) RateLimiterOption {
	return func(rl *RateLimiter) {
		rl.logger = logger
	}
}

// NewRateLimiter creates a new rate limiter allowing rps requests per
// second with the given burst.
func NewRateLimiter(rps, burst int, opts ...RateLimiterOption) *RateLimiter {
	rl := &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  observability.NopLogger(),
	}

	for _, opt := range opts {
		opt(rl)
	}

	return rl
}

// Allow reports whether a request may proceed.
func (rl *RateLimiter) Allow() bool {
	return rl.limiter.Allow()
}

// Middleware returns an HTTP middleware enforcing the rate limit.
// Rejected requests receive 429 with a JSON body.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.Allow() {
				rl.logger.Warn("request rejected by rate limiter",
					observability.String("path", r.URL.Path),
					observability.String("remote_addr", r.RemoteAddr),
				)

				observability.GetMetrics().RecordRateLimitRejected()

				w.Header().Set("Content-Type", ContentTypeJSON)
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = io.WriteString(w, `{"error":"rate limit exceeded"}`)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
