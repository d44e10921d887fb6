package shared

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeForStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected string
	}{
		{http.StatusBadRequest, "BAD_REQUEST"},
		{http.StatusUnauthorized, "UNAUTHORIZED"},
		{http.StatusForbidden, "FORBIDDEN"},
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusConflict, "CONFLICT"},
		{http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED"},
		{http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{http.StatusBadGateway, "BAD_GATEWAY"},
		{http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE"},
		// Everything outside the table maps to UNKNOWN_ERROR.
		{http.StatusTeapot, "UNKNOWN_ERROR"},
		{http.StatusOK, "UNKNOWN_ERROR"},
		{http.StatusGatewayTimeout, "UNKNOWN_ERROR"},
		{0, "UNKNOWN_ERROR"},
		{-1, "UNKNOWN_ERROR"},
		{999, "UNKNOWN_ERROR"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, CodeForStatus(tc.status), "status %d", tc.status)
	}
}

func TestNewAPIErrorDerivesCode(t *testing.T) {
	err := NewAPIError("something broke", http.StatusConflict, "", nil)

	assert.Equal(t, http.StatusConflict, err.StatusCode)
	assert.Equal(t, "CONFLICT", err.Code)
	assert.Equal(t, "something broke", err.Message)
	assert.False(t, err.Timestamp.IsZero())
}

func TestNewAPIErrorKeepsExplicitCode(t *testing.T) {
	err := NewAPIError("db down", http.StatusInternalServerError, CodeDatabaseError, nil)

	assert.Equal(t, CodeDatabaseError, err.Code)
}

func TestErrorConstructors(t *testing.T) {
	tests := []struct {
		name           string
		err            *APIError
		expectedStatus int
		expectedCode   string
		expectedKind   ErrorKind
		expectedDetail map[string]any
	}{
		{
			name:           "validation error",
			err:            NewValidationError("bad input", map[string]any{"field": "name"}),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   CodeValidationError,
			expectedKind:   KindValidation,
			expectedDetail: map[string]any{"field": "name"},
		},
		{
			name:           "not found with resource",
			err:            NewNotFoundError("Board not found", "board"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeNotFound,
			expectedKind:   KindNotFound,
			expectedDetail: map[string]any{"resource": "board"},
		},
		{
			name:           "not found without resource",
			err:            NewNotFoundError("gone", ""),
			expectedStatus: http.StatusNotFound,
			expectedCode:   CodeNotFound,
			expectedKind:   KindNotFound,
			expectedDetail: nil,
		},
		{
			name:           "unauthorized",
			err:            NewUnauthorizedError("no token"),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   CodeUnauthorized,
			expectedKind:   KindUnauthorized,
		},
		{
			name:           "forbidden",
			err:            NewForbiddenError("not yours"),
			expectedStatus: http.StatusForbidden,
			expectedCode:   CodeForbidden,
			expectedKind:   KindForbidden,
		},
		{
			name:           "conflict",
			err:            NewConflictError("duplicate"),
			expectedStatus: http.StatusConflict,
			expectedCode:   CodeConflict,
			expectedKind:   KindConflict,
		},
		{
			name:           "rate limit with retry after",
			err:            NewRateLimitError("slow down", 30),
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   CodeRateLimitExceeded,
			expectedKind:   KindRateLimit,
			expectedDetail: map[string]any{"retry_after": 30},
		},
		{
			name:           "database error with operation",
			err:            NewDatabaseError("A database error occurred", "create"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   CodeDatabaseError,
			expectedKind:   KindDatabase,
			expectedDetail: map[string]any{"operation": "create"},
		},
		{
			name:           "external service error",
			err:            NewExternalServiceError("upstream failed", "billing"),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   CodeExternalServiceErr,
			expectedKind:   KindExternalService,
			expectedDetail: map[string]any{"service": "billing"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedStatus, tc.err.StatusCode)
			assert.Equal(t, tc.expectedCode, tc.err.Code)
			assert.Equal(t, tc.expectedKind, tc.err.Kind)
			if tc.expectedDetail != nil {
				assert.Equal(t, tc.expectedDetail, tc.err.Details)
			}
		})
	}
}

func TestPayloadShape(t *testing.T) {
	err := NewNotFoundError("Test resource not found", "test_item")

	payload := err.Payload("abc12345")

	assert.Equal(t, false, payload["success"])
	assert.Equal(t, "Test resource not found", payload["message"])
	assert.Equal(t, "NOT_FOUND", payload["error_code"])
	assert.Equal(t, map[string]any{"resource": "test_item"}, payload["details"])
	assert.Equal(t, "abc12345", payload["request_id"])
	assert.NotEmpty(t, payload["timestamp"])
}

func TestPayloadWithoutRequestID(t *testing.T) {
	err := NewUnauthorizedError("no token")

	payload := err.Payload("")

	_, present := payload["request_id"]
	assert.False(t, present, "request_id must be absent when no correlation id exists")
	// Details are always present, even when empty.
	assert.Equal(t, map[string]any{}, payload["details"])
}

func TestPayloadIsIdempotent(t *testing.T) {
	err := NewConflictError("duplicate entry")

	first, errMarshal := json.Marshal(err.Payload("req1"))
	require.NoError(t, errMarshal)
	second, errMarshal := json.Marshal(err.Payload("req1"))
	require.NoError(t, errMarshal)

	assert.Equal(t, string(first), string(second),
		"serializing the same error twice must yield identical bytes")
}

func TestHTTPErrorMessage(t *testing.T) {
	err := &HTTPError{Status: http.StatusMethodNotAllowed, Detail: "Method not allowed"}

	assert.Equal(t, "http 405: Method not allowed", err.Error())
}
