package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subject represents a study subject tracked by the application.
// The full name is validated on construction and on every rename;
// the ID never changes after creation.
type Subject struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewSubject creates a Subject with the given ID and full name.
// Returns a validation error if the name is out of bounds.
func NewSubject(id uuid.UUID, fullName string) (*Subject, error) {
	if err := SubjectNamePolicy.Validate(fullName); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Subject{
		ID:        id,
		FullName:  fullName,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Rename changes the subject's full name. The new name is validated with
// the same policy as construction; the subject is left unchanged on failure.
func (s *Subject) Rename(fullName string) error {
	if err := SubjectNamePolicy.Validate(fullName); err != nil {
		return err
	}

	s.FullName = fullName
	s.UpdatedAt = time.Now().UTC()
	return nil
}
