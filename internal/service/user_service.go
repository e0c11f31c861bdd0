package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/studyroom/studyroom-api/internal/domain"
	"github.com/studyroom/studyroom-api/internal/redact"
	"github.com/studyroom/studyroom-api/internal/service/auth"
	"github.com/studyroom/studyroom-api/internal/store"
)

// Registration and login failure messages.
var (
	ErrAllFieldsRequired = errors.New("All fields are required: fullName, email, and password.")
	ErrEmailAlreadyExists = errors.New("User with this email already exists.")
	ErrCredentialsRequired = errors.New("Email and password are required")
	ErrInvalidCredentials = errors.New("Invalid email or password.")
	ErrUserProfileNotFound = errors.New("User not found")
	ErrNothingToUpdate = errors.New("Nothing to update")
	ErrEmailTakenOnUpdate = errors.New("Email is already taken")
)

// RegisterInput carries the fields required to register a new user.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// UpdateProfileInput carries the mutable profile fields. An empty field
// leaves the current value unchanged.
type UpdateProfileInput struct {
	FullName string
	Email    string
}

// UserService implements the user use cases: registration, login and the
// profile operations built on the remaining store methods.
type UserService struct {
	db        *sql.DB
	userStore store.UserStore
	hasher    auth.PasswordHasher
	verifier  auth.PasswordVerifier
	logger    *slog.Logger
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(
	db *sql.DB,
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *UserService {
	if userStore == nil {
		panic("userStore cannot be nil")
	}
	if hasher == nil {
		panic("hasher cannot be nil")
	}
	if verifier == nil {
		panic("verifier cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserService{
		db:        db,
		userStore: userStore,
		hasher:    hasher,
		verifier:  verifier,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// withTxStore runs fn against a transaction-bound UserStore. When the
// service has no database handle the base store is used directly, which
// lets tests run against in-memory stores.
func (s *UserService) withTxStore(ctx context.Context, fn func(context.Context, store.UserStore) error) error {
	if s.db == nil {
		return fn(ctx, s.userStore)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.userStore.WithTx(tx))
	})
}

// Register creates a new user account. Each check short-circuits, so a
// failure never leaves partial state behind.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.FullName == "" || input.Email == "" || input.Password == "" {
		return nil, classify(ErrValidation, ErrAllFieldsRequired)
	}

	// Pre-check read; the unique index on email is the backstop for the
	// race window between this lookup and the insert.
	_, err := s.userStore.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, classify(ErrConflict, ErrEmailAlreadyExists)
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		s.logger.Error("failed to check email uniqueness",
			slog.String("error", redact.Error(err)))
		return nil, classify(ErrUnexpected, fmt.Errorf("Error creating user: %v", err))
	}

	user, err := domain.NewUser(uuid.New(), input.FullName, input.Email, input.Password)
	if err != nil {
		return nil, classify(ErrValidation, err)
	}

	stored, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.String("error", redact.Error(err)))
		return nil, classify(ErrUnexpected, fmt.Errorf("Error creating user: %v", err))
	}
	user.Password = stored

	err = s.withTxStore(ctx, func(ctx context.Context, txStore store.UserStore) error {
		return txStore.Create(ctx, user)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			return nil, classify(ErrConflict, ErrEmailAlreadyExists)
		}
		s.logger.Error("failed to create user",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return nil, classify(ErrUnexpected, fmt.Errorf("Error creating user: %v", err))
	}

	s.logger.Info("user registered",
		slog.String("user_id", user.ID.String()))
	return user, nil
}

// Login reports whether the given credentials identify an existing user.
// A missing user and a wrong password are indistinguishable: both yield
// (false, nil).
func (s *UserService) Login(ctx context.Context, email, password string) (bool, error) {
	_, err := s.Authenticate(ctx, email, password)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Authenticate verifies the credentials and returns the matching user.
// Returns ErrUnauthorized for an unknown email or wrong password, so
// callers cannot tell the two apart.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, classify(ErrValidation, ErrCredentialsRequired)
	}

	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, classify(ErrUnauthorized, ErrInvalidCredentials)
		}
		s.logger.Error("failed to look up user by email",
			slog.String("error", redact.Error(err)))
		return nil, classify(ErrUnexpected, err)
	}

	ok, err := s.verifier.Compare(user.Password, password)
	if err != nil {
		s.logger.Error("failed to compare credentials",
			slog.String("error", redact.Error(err)),
			slog.String("user_id", user.ID.String()))
		return nil, classify(ErrUnexpected, err)
	}
	if !ok {
		return nil, classify(ErrUnauthorized, ErrInvalidCredentials)
	}

	return user, nil
}

// GetByID retrieves a user profile by ID.
func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, classify(ErrNotFound, ErrUserProfileNotFound)
		}
		return nil, classify(ErrUnexpected, err)
	}
	return user, nil
}

// UpdateProfile applies the given profile changes to the user. The read
// and the write run in one transaction so concurrent updates cannot
// interleave between them.
func (s *UserService) UpdateProfile(ctx context.Context, id uuid.UUID, input UpdateProfileInput) (*domain.User, error) {
	if input.FullName == "" && input.Email == "" {
		return nil, classify(ErrValidation, ErrNothingToUpdate)
	}

	var updated *domain.User
	err := s.withTxStore(ctx, func(ctx context.Context, txStore store.UserStore) error {
		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if input.FullName != "" {
			if err := user.SetFullName(input.FullName); err != nil {
				return classify(ErrValidation, err)
			}
		}
		if input.Email != "" {
			if err := user.SetEmail(input.Email); err != nil {
				return classify(ErrValidation, err)
			}
		}

		if err := txStore.Update(ctx, user); err != nil {
			return err
		}

		updated = user
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			return nil, classify(ErrNotFound, ErrUserProfileNotFound)
		case store.IsDuplicateError(err):
			return nil, classify(ErrConflict, ErrEmailTakenOnUpdate)
		default:
			return nil, classify(ErrUnexpected, err)
		}
	}

	s.logger.Info("user profile updated",
		slog.String("user_id", id.String()))
	return updated, nil
}

// Delete removes the user account.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.userStore.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return classify(ErrNotFound, ErrUserProfileNotFound)
		}
		return classify(ErrUnexpected, err)
	}

	s.logger.Info("user deleted",
		slog.String("user_id", id.String()))
	return nil
}
