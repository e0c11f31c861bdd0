package api

import (
	"github.com/google/uuid"

	"github.com/studyroom/studyroom-api/internal/domain"
)

// RegisterRequest is the payload for POST /users/register.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the payload for POST /users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateSubjectRequest is the payload for POST /subjects/create.
type CreateSubjectRequest struct {
	FullName string `json:"fullName"`
}

// UpdateProfileRequest is the payload for PUT /users/me. Omitted fields
// leave the current value unchanged.
type UpdateProfileRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// UserResponse is the user representation returned to clients. The
// password never appears here.
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
}

// LoginResponse carries the access token issued on login.
type LoginResponse struct {
	Token string `json:"token"`
}

// SubjectResponse is the subject representation returned on create.
type SubjectResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
}

// NewUserResponse maps a domain user to its API representation.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	}
}

// NewSubjectResponse maps a domain subject to its API representation.
func NewSubjectResponse(subject *domain.Subject) SubjectResponse {
	return SubjectResponse{
		ID:       subject.ID,
		FullName: subject.FullName,
	}
}
