package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/studyroom/studyroom-api/internal/domain"
	"github.com/studyroom/studyroom-api/internal/redact"
	"github.com/studyroom/studyroom-api/internal/store"
)

// Subject use case failure messages.
var (
	ErrSubjectNameRequired = errors.New("The subject's full name is required")
	ErrSubjectExists       = errors.New("Subject with this name already exists.")
)

// SubjectService implements the subject use cases.
type SubjectService struct {
	db           *sql.DB
	subjectStore store.SubjectStore
	logger       *slog.Logger
}

// NewSubjectService creates a new SubjectService with the given dependencies.
func NewSubjectService(db *sql.DB, subjectStore store.SubjectStore, logger *slog.Logger) *SubjectService {
	if subjectStore == nil {
		panic("subjectStore cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &SubjectService{
		db:           db,
		subjectStore: subjectStore,
		logger:       logger.With(slog.String("component", "subject_service")),
	}
}

// withTxStore runs fn against a transaction-bound SubjectStore, or the
// base store directly when the service has no database handle.
func (s *SubjectService) withTxStore(ctx context.Context, fn func(context.Context, store.SubjectStore) error) error {
	if s.db == nil {
		return fn(ctx, s.subjectStore)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, s.subjectStore.WithTx(tx))
	})
}

// Create validates the name, builds a new subject and persists it.
func (s *SubjectService) Create(ctx context.Context, fullName string) (*domain.Subject, error) {
	if fullName == "" {
		return nil, classify(ErrValidation, ErrSubjectNameRequired)
	}

	subject, err := domain.NewSubject(uuid.New(), strings.TrimSpace(fullName))
	if err != nil {
		return nil, classify(ErrValidation, err)
	}

	err = s.withTxStore(ctx, func(ctx context.Context, txStore store.SubjectStore) error {
		return txStore.Create(ctx, subject)
	})
	if err != nil {
		if store.IsDuplicateError(err) {
			return nil, classify(ErrConflict, ErrSubjectExists)
		}
		s.logger.Error("failed to create subject",
			slog.String("error", redact.Error(err)),
			slog.String("subject_id", subject.ID.String()))
		return nil, classify(ErrUnexpected, fmt.Errorf("Error creating subject: %v", err))
	}

	s.logger.Info("subject created",
		slog.String("subject_id", subject.ID.String()))
	return subject, nil
}

// List returns all subjects exactly as the store yields them. An empty
// table produces a nil slice and that nil is passed through untouched.
func (s *SubjectService) List(ctx context.Context) ([]*domain.Subject, error) {
	subjects, err := s.subjectStore.List(ctx)
	if err != nil {
		if classified(err) {
			return nil, err
		}
		s.logger.Error("failed to list subjects",
			slog.String("error", redact.Error(err)))
		return nil, classify(ErrUnexpected, err)
	}
	return subjects, nil
}
