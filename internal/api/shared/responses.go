package shared

import (
	"log/slog"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Response is the uniform envelope wrapping every API response.
// Pagination is only present on paginated list responses.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination carries navigation metadata for list endpoints.
// TotalPages is always recomputed from Total and PerPage, never stored
// independently, so it cannot drift.
type Pagination struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// SuccessBody builds a success envelope around a domain payload.
func SuccessBody(message string, data any) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorBody builds an error envelope. data optionally carries
// additional context safe to expose to the caller.
func ErrorBody(message string, data any) Response {
	return Response{
		Success: false,
		Message: message,
		Data:    data,
	}
}

// PaginatedBody builds a success envelope with pagination metadata.
// Page and perPage are caller-supplied; range validation belongs to
// the route layer. perPage must be positive.
func PaginatedBody(data any, total, page, perPage int, message string) Response {
	totalPages := (total + perPage - 1) / perPage

	return Response{
		Success: true,
		Message: message,
		Data:    data,
		Pagination: &Pagination{
			Total:      total,
			Page:       page,
			PerPage:    perPage,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
			HasPrev:    page > 1,
		},
	}
}

// RespondWithJSON writes a JSON response with the given status code.
// Encoding failures are logged, not propagated; headers are already
// written by then and the request must not be aborted.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path,
			"request_id", GetRequestID(r.Context()))
	}
}
