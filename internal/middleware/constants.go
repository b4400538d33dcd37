// Package middleware provides HTTP middleware components for the
// catalog server.
package middleware

// Header and content type constants shared across middleware.
const (
	// RequestIDHeader is the header name for request ID.
	RequestIDHeader = "X-Request-ID"

	// ContentTypeJSON is the JSON content type.
	ContentTypeJSON = "application/json"
)
