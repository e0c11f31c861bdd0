package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/studyroom/studyroom-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
// It is the repository contract the user use cases depend on; the
// persistence technology behind it is swappable.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist. The lookup is
	// exact: emails are stored lowercased, and no case folding is applied
	// to the argument.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Update modifies an existing user. The caller provides the complete
	// user object. Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists when updating to an email that is already taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore that runs its operations on the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) UserStore
}
