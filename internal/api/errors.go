package api

import (
	"errors"
	"fmt"

	"github.com/taskerhq/tasker-api/internal/api/shared"
	"github.com/taskerhq/tasker-api/internal/domain"
	"github.com/taskerhq/tasker-api/internal/store"
)

// mapStoreError translates expected store outcomes into API errors the
// client may see. Unexpected errors (StorageError, context errors)
// pass through unchanged so the dispatcher's later chain cases handle
// them.
func mapStoreError(err error, resource, noun string) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return shared.NewNotFoundError(fmt.Sprintf("%s not found", noun), resource)
	case errors.Is(err, store.ErrDuplicate):
		return shared.NewConflictError(fmt.Sprintf("%s conflicts with an existing entry", noun))
	default:
		return err
	}
}

// mapDomainError converts an entity validation failure into an API
// validation error carrying the offending field.
func mapDomainError(err error) error {
	var fieldErr *domain.FieldError
	if errors.As(err, &fieldErr) {
		return shared.NewValidationError(fieldErr.Message,
			map[string]any{"field": fieldErr.Field})
	}
	return err
}
