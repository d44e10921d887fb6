package shared

import (
	"context"

	"github.com/google/uuid"
)

// ContextKey is the type used for context values set by this package.
type ContextKey string

const (
	// RequestIDKey is the context key under which the per-request
	// correlation id is stored.
	RequestIDKey ContextKey = "requestID"

	// RequestIDLength is the number of characters kept from the
	// generated UUID. Eight hex characters are enough to correlate
	// log lines within a log retention window.
	RequestIDLength = 8
)

// NewRequestID generates a short opaque correlation id for one request.
func NewRequestID() string {
	return uuid.NewString()[:RequestIDLength]
}

// WithRequestID stores a correlation id in the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// GetRequestID retrieves the correlation id from the context.
// Returns an empty string when no id was assigned, e.g. for errors
// raised before the logging middleware ran.
func GetRequestID(ctx context.Context) string {
	requestID, ok := ctx.Value(RequestIDKey).(string)
	if !ok {
		return ""
	}
	return requestID
}
