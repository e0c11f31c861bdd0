// Package shared provides response and context helpers used by all API
// handlers.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Response is the envelope every endpoint (except the bare-array list
// routes) writes. Data is omitted when nil.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

// RespondWithJSON writes a raw JSON response with the given status code.
// Used directly by endpoints that return a bare payload instead of the
// envelope.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response",
			"error", err,
			"path", r.URL.Path)
	}
}

// RespondWithSuccess writes an enveloped success response.
func RespondWithSuccess(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, Response{
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// RespondWithError writes an enveloped error response. The message is the
// client-facing text; any internal detail belongs in the logs, not here.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.Log(r.Context(), logLevel, "API error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, Response{
		StatusCode: status,
		Message:    message,
	})
}
