// Package api provides the HTTP handlers for the task board service
// and the error dispatcher that converts every failure escaping a
// handler into one uniform JSON envelope and one structured log
// record. Handlers return errors instead of writing error responses
// themselves; the dispatcher owns the error-to-response translation.
package api
