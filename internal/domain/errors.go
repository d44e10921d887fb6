package domain

import "fmt"

// ErrValidation is the sentinel wrapped by all entity validation
// failures. Callers use errors.Is to detect invalid entities and
// errors.As with *FieldError to extract the offending field.
var ErrValidation = fmt.Errorf("entity validation failed")

// FieldError reports a single invalid entity field.
type FieldError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	return fmt.Sprintf("%v: %s: %s", ErrValidation, e.Field, e.Message)
}

// Unwrap makes errors.Is(err, ErrValidation) hold for field errors.
func (e *FieldError) Unwrap() error {
	return ErrValidation
}

func newFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
