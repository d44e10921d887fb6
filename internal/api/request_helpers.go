package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/taskerhq/tasker-api/internal/api/shared"
	"github.com/taskerhq/tasker-api/internal/store"
)

const (
	defaultPerPage = 10
	maxPerPage     = 100
)

// paginationParams reads page/per_page query parameters with defaults
// of 1 and 10. per_page is capped at 100. Non-numeric or non-positive
// values yield a 400 error.
func paginationParams(r *http.Request) (store.ListParams, error) {
	params := store.ListParams{Page: 1, PerPage: defaultPerPage}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, shared.NewAPIError("page must be a positive integer", http.StatusBadRequest, "", nil)
		}
		params.Page = page
	}

	if raw := r.URL.Query().Get("per_page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil || perPage < 1 {
			return params, shared.NewAPIError("per_page must be a positive integer", http.StatusBadRequest, "", nil)
		}
		if perPage > maxPerPage {
			perPage = maxPerPage
		}
		params.PerPage = perPage
	}

	return params, nil
}

// pathID parses the named chi URL parameter as a UUID.
func pathID(r *http.Request, name, noun string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, shared.NewAPIError(noun+" ID is required", http.StatusBadRequest, "", nil)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.NewAPIError("Invalid "+noun+" ID format", http.StatusBadRequest, "", nil)
	}
	return id, nil
}
