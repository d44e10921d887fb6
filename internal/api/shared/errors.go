package shared

import (
	"fmt"
	"net/http"
	"time"
)

// ErrorKind identifies one member of the closed API error set.
// Each kind fixes an HTTP status and a stable machine-readable code;
// serialization is a single function over the discriminant, so callers
// never branch on kind to produce the wire shape.
type ErrorKind int

const (
	// KindGeneric is an APIError built directly from a status code,
	// with the error code derived from the status lookup table.
	KindGeneric ErrorKind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindConflict
	KindRateLimit
	KindDatabase
	KindExternalService
)

// Stable machine-readable error codes carried in error responses.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeConflict            = "CONFLICT"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeDatabaseError       = "DATABASE_ERROR"
	CodeExternalServiceErr  = "EXTERNAL_SERVICE_ERROR"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
	CodeUnknownError        = "UNKNOWN_ERROR"
)

// CodeForStatus derives a stable error code from an HTTP status.
// Statuses outside the table map to UNKNOWN_ERROR.
func CodeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return CodeUnauthorized
	case http.StatusForbidden:
		return CodeForbidden
	case http.StatusNotFound:
		return CodeNotFound
	case http.StatusConflict:
		return CodeConflict
	case http.StatusUnprocessableEntity:
		return CodeValidationError
	case http.StatusTooManyRequests:
		return CodeRateLimitExceeded
	case http.StatusInternalServerError:
		return CodeInternalServerError
	case http.StatusBadGateway:
		return "BAD_GATEWAY"
	case http.StatusServiceUnavailable:
		return "SERVICE_UNAVAILABLE"
	default:
		return CodeUnknownError
	}
}

// APIError is a typed, structured error safe to serialize to clients.
// Immutable after construction; the timestamp is fixed when the error
// is created so repeated serialization yields identical output.
type APIError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Code       string
	Details    map[string]any
	Timestamp  time.Time
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Code, e.StatusCode, e.Message)
}

// Payload builds the wire shape for an error response. A non-empty
// requestID is attached under "request_id" for log correlation.
func (e *APIError) Payload(requestID string) map[string]any {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}

	payload := map[string]any{
		"success":    false,
		"message":    e.Message,
		"error_code": e.Code,
		"details":    details,
		"timestamp":  e.Timestamp.UTC().Format(time.RFC3339Nano),
	}
	if requestID != "" {
		payload["request_id"] = requestID
	}
	return payload
}

// NewAPIError builds a generic APIError. An empty code is derived from
// the status via CodeForStatus, so the code field is always populated.
func NewAPIError(message string, status int, code string, details map[string]any) *APIError {
	if code == "" {
		code = CodeForStatus(status)
	}
	return &APIError{
		Kind:       KindGeneric,
		Message:    message,
		StatusCode: status,
		Code:       code,
		Details:    details,
		Timestamp:  time.Now().UTC(),
	}
}

// NewValidationError reports a request that failed validation.
// Details carry structured field-level violations.
func NewValidationError(message string, details map[string]any) *APIError {
	e := NewAPIError(message, http.StatusUnprocessableEntity, CodeValidationError, details)
	e.Kind = KindValidation
	return e
}

// NewNotFoundError reports a missing resource. A non-empty resource
// name is recorded under details.resource.
func NewNotFoundError(message string, resource string) *APIError {
	var details map[string]any
	if resource != "" {
		details = map[string]any{"resource": resource}
	}
	e := NewAPIError(message, http.StatusNotFound, CodeNotFound, details)
	e.Kind = KindNotFound
	return e
}

// NewUnauthorizedError reports a request lacking valid credentials.
func NewUnauthorizedError(message string) *APIError {
	e := NewAPIError(message, http.StatusUnauthorized, CodeUnauthorized, nil)
	e.Kind = KindUnauthorized
	return e
}

// NewForbiddenError reports a request the caller may not perform.
func NewForbiddenError(message string) *APIError {
	e := NewAPIError(message, http.StatusForbidden, CodeForbidden, nil)
	e.Kind = KindForbidden
	return e
}

// NewConflictError reports a state conflict, e.g. a duplicate entity.
func NewConflictError(message string) *APIError {
	e := NewAPIError(message, http.StatusConflict, CodeConflict, nil)
	e.Kind = KindConflict
	return e
}

// NewRateLimitError reports rate limiting. A positive retryAfter is
// recorded in seconds under details.retry_after.
func NewRateLimitError(message string, retryAfter int) *APIError {
	var details map[string]any
	if retryAfter > 0 {
		details = map[string]any{"retry_after": retryAfter}
	}
	e := NewAPIError(message, http.StatusTooManyRequests, CodeRateLimitExceeded, details)
	e.Kind = KindRateLimit
	return e
}

// NewDatabaseError reports a persistence failure. Only an opaque
// operation label ever reaches the client; raw driver detail stays in
// the logs.
func NewDatabaseError(message string, operation string) *APIError {
	var details map[string]any
	if operation != "" {
		details = map[string]any{"operation": operation}
	}
	e := NewAPIError(message, http.StatusInternalServerError, CodeDatabaseError, details)
	e.Kind = KindDatabase
	return e
}

// NewExternalServiceError reports a downstream dependency failure.
// A non-empty service name is recorded under details.service.
func NewExternalServiceError(message string, service string) *APIError {
	var details map[string]any
	if service != "" {
		details = map[string]any{"service": service}
	}
	e := NewAPIError(message, http.StatusBadGateway, CodeExternalServiceErr, details)
	e.Kind = KindExternalService
	return e
}

// HTTPError is a transport-level failure that carries a status but no
// taxonomy kind, e.g. the router's own 404/405 responses. The
// dispatcher wraps it into a plain error envelope, preserving the
// status.
type HTTPError struct {
	Status int
	Detail string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Status, e.Detail)
}
