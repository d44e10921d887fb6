package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/taskerhq/tasker-api/internal/api/shared"
	"github.com/taskerhq/tasker-api/internal/store"
)

// HandlerFunc is an HTTP handler that reports failures by returning an
// error instead of writing an error response itself.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// Dispatcher converts errors escaping the route layer into HTTP
// responses. Errors are matched against an ordered chain, most
// specific first; exactly one case handles each error, and each case
// emits exactly one structured log record before the response is
// written.
//
// The chain:
//  1. *shared.APIError — serialized as-is with its own status
//  2. *shared.HTTPError — wrapped in a plain error envelope, status preserved
//  3. validator.ValidationErrors — reformatted, forced to 422
//  4. *store.StorageError — logged in full, answered generically with 500
//  5. anything else — logged with stack trace, answered generically with 500
type Dispatcher struct {
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher emitting through the given logger.
func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for Dispatcher")
	}
	return &Dispatcher{logger: logger}
}

// Wrap adapts a HandlerFunc into an http.HandlerFunc, routing any
// returned error through the dispatch chain.
func (d *Dispatcher) Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			d.Dispatch(w, r, err)
		}
	}
}

// Recoverer is a middleware that converts panics into the generic
// error response. It is the pipeline's last line of defense and never
// panics itself.
func (d *Dispatcher) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					// The transport layer handles aborted requests itself.
					panic(rec)
				}
				d.handleUnexpected(w, r, recoveredError(rec), debug.Stack())
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// Dispatch routes err through the ordered handler chain. First match
// wins; exactly one handler fires per error.
func (d *Dispatcher) Dispatch(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *shared.APIError
	if errors.As(err, &apiErr) {
		d.handleAPIError(w, r, apiErr)
		return
	}

	var httpErr *shared.HTTPError
	if errors.As(err, &httpErr) {
		d.handleHTTPError(w, r, httpErr)
		return
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		d.handleValidationErrors(w, r, validationErrs)
		return
	}

	var storageErr *store.StorageError
	if errors.As(err, &storageErr) {
		d.handleStorageError(w, r, storageErr)
		return
	}

	d.handleUnexpected(w, r, err, debug.Stack())
}

func (d *Dispatcher) handleAPIError(w http.ResponseWriter, r *http.Request, apiErr *shared.APIError) {
	d.log(r, apiErr.StatusCode, fmt.Sprintf("API Error: %s", apiErr.Message),
		slog.String("error_code", apiErr.Code))

	requestID := shared.GetRequestID(r.Context())
	shared.RespondWithJSON(w, r, apiErr.StatusCode, apiErr.Payload(requestID))
}

func (d *Dispatcher) handleHTTPError(w http.ResponseWriter, r *http.Request, httpErr *shared.HTTPError) {
	d.log(r, httpErr.Status, fmt.Sprintf("HTTP Exception: %s", httpErr.Detail))

	shared.RespondWithJSON(w, r, httpErr.Status, shared.ErrorBody(httpErr.Detail, nil))
}

func (d *Dispatcher) handleValidationErrors(w http.ResponseWriter, r *http.Request, validationErrs validator.ValidationErrors) {
	formatted := make([]string, 0, len(validationErrs))
	records := make([]map[string]any, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := fieldPath(fieldErr)
		message := validationMessage(fieldErr)
		formatted = append(formatted, fmt.Sprintf("%s: %s", field, message))
		records = append(records, map[string]any{
			"field":   field,
			"tag":     fieldErr.Tag(),
			"param":   fieldErr.Param(),
			"message": message,
		})
	}
	summary := "Validation failed: " + strings.Join(formatted, "; ")

	d.log(r, http.StatusUnprocessableEntity, fmt.Sprintf("Validation Error: %s", summary),
		slog.Any("validation_errors", records))

	apiErr := shared.NewValidationError("Request validation failed",
		map[string]any{"validation_errors": records})
	requestID := shared.GetRequestID(r.Context())
	shared.RespondWithJSON(w, r, apiErr.StatusCode, apiErr.Payload(requestID))
}

func (d *Dispatcher) handleStorageError(w http.ResponseWriter, r *http.Request, storageErr *store.StorageError) {
	// Full driver detail goes to the logs only; the client sees a
	// generic message.
	d.log(r, http.StatusInternalServerError, fmt.Sprintf("Database Error: %s", storageErr.Error()),
		slog.String("exception_type", fmt.Sprintf("%T", storageErr.Unwrap())),
		slog.String("exception_message", storageErr.Error()))

	apiErr := shared.NewDatabaseError("A database error occurred", storageErr.Operation)
	requestID := shared.GetRequestID(r.Context())
	shared.RespondWithJSON(w, r, apiErr.StatusCode, apiErr.Payload(requestID))
}

// handleUnexpected is the terminal case for unanticipated errors. It
// must never panic: a failure here would leave the request without a
// response.
func (d *Dispatcher) handleUnexpected(w http.ResponseWriter, r *http.Request, err error, stack []byte) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(os.Stderr, "error dispatcher failed: %v\n", rec)
			w.WriteHeader(http.StatusInternalServerError)
		}
	}()

	errType := fmt.Sprintf("%T", err)
	d.log(r, http.StatusInternalServerError,
		fmt.Sprintf("Unhandled Exception: %s: %s", errType, err.Error()),
		slog.String("exception_type", errType),
		slog.String("exception_message", err.Error()),
		slog.String("stack_trace", string(stack)))

	// Only the error's type name is exposed; the message may carry
	// internal detail.
	body := shared.ErrorBody("An unexpected error occurred", map[string]any{"error_type": errType})
	shared.RespondWithJSON(w, r, http.StatusInternalServerError, body)
}

// log emits the single structured record for a handled error. The
// duration is 0 here: dispatch runs outside the request timing scope,
// which belongs to the logging middleware. Emission failures degrade
// to stderr rather than aborting the request.
func (d *Dispatcher) log(r *http.Request, status int, msg string, extra ...slog.Attr) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(os.Stderr, "log emission failed: %v: %s\n", rec, msg)
		}
	}()

	attrs := []slog.Attr{
		slog.String("request_id", shared.GetRequestID(r.Context())),
		slog.String("method", r.Method),
		slog.String("route", r.URL.Path),
		slog.Int("status", status),
		slog.Float64("duration_ms", 0),
		slog.String("ip", shared.ClientAddress(r)),
		slog.String("user_agent", shared.UserAgent(r)),
	}
	attrs = append(attrs, extra...)

	d.logger.LogAttrs(r.Context(), shared.StatusLogLevel(status), msg, attrs...)
}

// fieldPath returns the field path of a violation with the outer
// struct name stripped, e.g. "CreateBoardRequest.Name" -> "Name".
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if _, rest, found := strings.Cut(namespace, "."); found {
		return rest
	}
	return namespace
}

// validationMessage maps validation tags to user-friendly messages.
func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "this field is required"
	case "min":
		return "value is too short"
	case "max":
		return "value is too long"
	case "gte":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	case "uuid":
		return "must be a valid UUID"
	case "hexcolor":
		return "must be a valid hex color"
	default:
		return fmt.Sprintf("failed validation on '%s'", fieldErr.Tag())
	}
}

func recoveredError(rec any) error {
	if err, ok := rec.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", rec)
}
