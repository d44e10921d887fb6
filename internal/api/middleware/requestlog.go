// Package middleware contains the HTTP middleware of the request
// pipeline.
package middleware

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"os"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/taskerhq/tasker-api/internal/api/shared"
)

// RequestLogger assigns a correlation id to each inbound request,
// times it, and emits one structured log line per request. It owns the
// request's observability; error-to-response translation stays with
// the dispatcher, so the two can evolve independently.
type RequestLogger struct {
	logger *slog.Logger
}

// NewRequestLogger creates a RequestLogger emitting through the given
// logger.
func NewRequestLogger(logger *slog.Logger) *RequestLogger {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for RequestLogger")
	}
	return &RequestLogger{logger: logger}
}

// Handler is the middleware entry point. Per request it mints a
// correlation id, stores it in the context, resolves the client
// address, and after the downstream handler returns logs exactly one
// record at a severity derived from the response status. If the
// downstream panics, the record is logged at error severity with the
// status forced to 500 — the client-visible status is decided later by
// the recovery layer — and the panic is re-raised unchanged.
func (l *RequestLogger) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := shared.NewRequestID()
		ctx := shared.WithRequestID(r.Context(), requestID)

		start := time.Now()
		clientAddr := shared.ClientAddress(r)
		userAgent := shared.UserAgent(r)

		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			if rec := recover(); rec != nil {
				l.emit(r, slog.LevelError, fmt.Sprintf("Exception: %v", rec),
					requestID, http.StatusInternalServerError,
					elapsedMillis(start), clientAddr, userAgent)
				panic(rec)
			}
		}()

		next.ServeHTTP(ww, r.WithContext(ctx))

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		l.emit(r, shared.StatusLogLevel(status), statusMessage(status),
			requestID, status, elapsedMillis(start), clientAddr, userAgent)
	})
}

// emit writes the request's log record. A failing log sink must never
// abort request processing, so emission failures degrade to stderr.
func (l *RequestLogger) emit(
	r *http.Request,
	level slog.Level,
	message string,
	requestID string,
	status int,
	durationMS float64,
	clientAddr string,
	userAgent string,
) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Fprintf(os.Stderr, "request log emission failed: %v: %s %s -> %d\n",
				rec, r.Method, r.URL.Path, status)
		}
	}()

	l.logger.LogAttrs(r.Context(), level, message,
		slog.String("request_id", requestID),
		slog.String("method", r.Method),
		slog.String("route", r.URL.Path),
		slog.Int("status", status),
		slog.Float64("duration_ms", durationMS),
		slog.String("ip", clientAddr),
		slog.String("user_agent", userAgent),
	)
}

// statusMessage maps a response status to its short log message,
// e.g. 200 -> "Success: 200", 404 -> "Client error: 404",
// 500 -> "Server error: 500".
func statusMessage(status int) string {
	switch {
	case status >= 500:
		return fmt.Sprintf("Server error: %d", status)
	case status >= 400:
		return fmt.Sprintf("Client error: %d", status)
	default:
		return fmt.Sprintf("Success: %d", status)
	}
}

// elapsedMillis returns the elapsed time since start in milliseconds,
// rounded to one decimal place.
func elapsedMillis(start time.Time) float64 {
	ms := float64(time.Since(start).Microseconds()) / 1000.0
	return math.Round(ms*10) / 10
}
