package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a
	// uniqueness constraint (e.g. two lists at the same position).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when an entity points at a
	// parent that does not exist (foreign key violation).
	ErrInvalidReference = errors.New("referenced entity does not exist")

	// Entity-specific "not found" errors.

	ErrBoardNotFound = fmt.Errorf("%w: board", ErrNotFound)
	ErrListNotFound  = fmt.Errorf("%w: list", ErrNotFound)
	ErrCardNotFound  = fmt.Errorf("%w: card", ErrNotFound)
)

// IsNotFound checks if the error is any kind of "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StorageError wraps an unexpected persistence failure: connection
// loss, malformed SQL, driver faults. It is never mapped to a client
// status by the stores themselves; the error dispatcher logs the
// wrapped detail and answers with a generic database error.
type StorageError struct {
	Entity    string // entity being operated on, e.g. "board"
	Operation string // operation that failed, e.g. "create"
	Err       error  // underlying driver error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return fmt.Sprintf("%s operation on %s failed: %v", e.Operation, e.Entity, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps an unexpected driver error with entity and
// operation context.
func NewStorageError(entity, operation string, err error) *StorageError {
	return &StorageError{Entity: entity, Operation: operation, Err: err}
}
