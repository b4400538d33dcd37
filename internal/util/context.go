package util

import (
	"context"
	"sync"
	"time"
)

// Context keys.
type ctxKey string

const (
	ctxKeyRequestID ctxKey = "request_id"
	ctxKeyStartTime ctxKey = "start_time"
	ctxKeyRoute     ctxKey = "route"
)

// ContextWithRequestID adds a request ID to the context.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyRequestID).(string); ok {
		return v
	}
	return ""
}

// ContextWithStartTime adds a start time to the context.
func ContextWithStartTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ctxKeyStartTime, t)
}

// StartTimeFromContext extracts the start time from context.
func StartTimeFromContext(ctx context.Context) time.Time {
	if v, ok := ctx.Value(ctxKeyStartTime).(time.Time); ok {
		return v
	}
	return time.Time{}
}

// RouteLabel carries the matched route name from the router back to
// middleware that runs earlier in the chain. The middleware injects an
// empty label into the context; the router fills it on match.
type RouteLabel struct {
	mu   sync.Mutex
	name string
}

// Set records the route name.
func (l *RouteLabel) Set(name string) {
	l.mu.Lock()
	l.name = name
	l.mu.Unlock()
}

// Get returns the recorded route name, or "" when no route matched.
func (l *RouteLabel) Get() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.name
}

// ContextWithRouteLabel adds a route label holder to the context.
func ContextWithRouteLabel(ctx context.Context, label *RouteLabel) context.Context {
	return context.WithValue(ctx, ctxKeyRoute, label)
}

// RouteLabelFromContext extracts the route label holder from context.
func RouteLabelFromContext(ctx context.Context) *RouteLabel {
	if v, ok := ctx.Value(ctxKeyRoute).(*RouteLabel); ok {
		return v
	}
	return nil
}

// ElapsedTime returns the elapsed time since the start time in context.
func ElapsedTime(ctx context.Context) time.Duration {
	startTime := StartTimeFromContext(ctx)
	if startTime.IsZero() {
		return 0
	}
	return time.Since(startTime)
}
