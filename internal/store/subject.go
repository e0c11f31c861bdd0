package store

import (
	"context"
	"database/sql"

	"github.com/studyroom/studyroom-api/internal/domain"
)

// SubjectStore defines the interface for subject data persistence.
type SubjectStore interface {
	// Create saves a new subject to the store.
	// Returns ErrSubjectNameExists if a subject with the same full name
	// already exists.
	Create(ctx context.Context, subject *domain.Subject) error

	// List returns all subjects. The result is handed back exactly as the
	// database yields it: a nil slice when there are no rows is passed
	// through, not normalized to an empty one.
	List(ctx context.Context) ([]*domain.Subject, error)

	// WithTx returns a SubjectStore that runs its operations on the
	// provided transaction.
	WithTx(tx *sql.Tx) SubjectStore
}
