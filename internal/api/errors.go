package api

import (
	"errors"
	"net/http"

	"github.com/studyroom/studyroom-api/internal/api/shared"
	"github.com/studyroom/studyroom-api/internal/platform/logger"
	"github.com/studyroom/studyroom-api/internal/redact"
	"github.com/studyroom/studyroom-api/internal/service"
)

// MapErrorToStatusCode translates a use case error kind into an HTTP
// status code. Unclassified errors are treated as internal failures.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// HandleServiceError writes the enveloped error response for a use case
// failure. The error message is the client-facing contract for every
// kind, including internal failures, matching the original API behavior.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(r.Context()).Error("request failed",
			"error", redact.Error(err),
			"path", r.URL.Path)
	}
	shared.RespondWithError(w, r, status, err.Error())
}
