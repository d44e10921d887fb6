package shared

import (
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used for request DTOs.
// validator.Validate is safe for concurrent use.
var Validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// DecodeAndValidate decodes the request body and validates the result.
// A malformed body yields a 400 APIError; validation failures are
// returned as raw validator.ValidationErrors so the error dispatcher
// can format field-level violations uniformly.
func DecodeAndValidate(r *http.Request, v any) error {
	if err := DecodeJSON(r, v); err != nil {
		return NewAPIError("Request body must be valid JSON", http.StatusBadRequest, "", nil)
	}
	return Validate.Struct(v)
}
