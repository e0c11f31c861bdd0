package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/studyroom/studyroom-api/internal/api/shared"
	"github.com/studyroom/studyroom-api/internal/domain"
)

// SubjectService is the use case surface the subject handler depends on.
type SubjectService interface {
	Create(ctx context.Context, fullName string) (*domain.Subject, error)
	List(ctx context.Context) ([]*domain.Subject, error)
}

// SubjectHandler handles subject creation and listing requests.
type SubjectHandler struct {
	subjectService SubjectService
}

// NewSubjectHandler creates a new SubjectHandler with the given dependencies.
func NewSubjectHandler(subjectService SubjectService) *SubjectHandler {
	if subjectService == nil {
		panic("subjectService cannot be nil")
	}
	return &SubjectHandler{subjectService: subjectService}
}

// Create handles POST /subjects/create.
func (h *SubjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateSubjectRequest
	if err := DecodeJSON(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "fullName" {
			shared.RespondWithError(w, r, http.StatusBadRequest,
				"The subject's full name must be a string")
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	subject, err := h.subjectService.Create(r.Context(), req.FullName)
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusCreated,
		"Subject created successfully", NewSubjectResponse(subject))
}

// List handles GET /subjects/list. The response is the bare JSON array,
// not the envelope; a nil slice from the store serializes as null.
func (h *SubjectHandler) List(w http.ResponseWriter, r *http.Request) {
	subjects, err := h.subjectService.List(r.Context())
	if err != nil {
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, subjects)
}
