// Package correlation carries a per-request correlation ID through contexts and
// HTTP headers.
package correlation

import (
	"context"

	"github.com/google/uuid"
)

// HeaderName is the HTTP header for correlation ID.
const HeaderName = "X-Correlation-ID"

// maxLen bounds IDs accepted from callers so they stay sane in log lines.
const maxLen = 128

type contextKey struct{}

// FromContext returns the correlation ID, or "" when none is set.
func FromContext(ctx context.Context) string {
	if id, ok := ctx.Value(contextKey{}).(string); ok {
		return id
	}
	return ""
}

func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// NewID generates a new correlation ID (UUID v4).
func NewID() string {
	return uuid.New().String()
}

// FromHeader returns the caller-supplied ID when it is usable, otherwise a new one.
func FromHeader(value string) string {
	if value == "" || len(value) > maxLen {
		return NewID()
	}
	return value
}
