package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"

	"github.com/studyroom/studyroom-api/internal/domain"
	"github.com/studyroom/studyroom-api/internal/store"
)

// PostgresSubjectStore implements the store.SubjectStore interface using a
// PostgreSQL database as the storage backend.
type PostgresSubjectStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSubjectStore creates a new PostgreSQL implementation of the
// SubjectStore interface. The connection (or transaction) is managed by
// the caller. If logger is nil, the process default logger is used.
func NewPostgresSubjectStore(db store.DBTX, logger *slog.Logger) *PostgresSubjectStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSubjectStore{
		db:     db,
		logger: logger.With(slog.String("component", "subject_store")),
	}
}

// Ensure PostgresSubjectStore implements store.SubjectStore
var _ store.SubjectStore = (*PostgresSubjectStore)(nil)

// WithTx returns a SubjectStore bound to the given transaction.
func (s *PostgresSubjectStore) WithTx(tx *sql.Tx) store.SubjectStore {
	return &PostgresSubjectStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.SubjectStore.Create.
// Returns store.ErrSubjectNameExists when the full name unique index is
// violated.
func (s *PostgresSubjectStore) Create(ctx context.Context, subject *domain.Subject) error {
	query := `
		INSERT INTO subjects (id, full_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)`

	_, err := s.db.ExecContext(ctx, query,
		subject.ID,
		strings.TrimSpace(subject.FullName),
		subject.CreatedAt,
		subject.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrSubjectNameExists
		}
		s.logger.Error("failed to insert subject",
			slog.String("error", err.Error()),
			slog.String("subject_id", subject.ID.String()))
		return store.NewStoreError("subject", "create", "insert failed", err)
	}

	return nil
}

// List implements store.SubjectStore.List. When there are no rows the
// returned slice is nil; callers pass that through as-is.
func (s *PostgresSubjectStore) List(ctx context.Context) ([]*domain.Subject, error) {
	query := `
		SELECT id, full_name, created_at, updated_at
		FROM subjects
		ORDER BY created_at`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("failed to query subjects",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("subject", "list", "query failed", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.Error("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var subjects []*domain.Subject
	for rows.Next() {
		var subject domain.Subject
		if err := rows.Scan(
			&subject.ID,
			&subject.FullName,
			&subject.CreatedAt,
			&subject.UpdatedAt,
		); err != nil {
			s.logger.Error("failed to scan subject row",
				slog.String("error", err.Error()))
			return nil, store.NewStoreError("subject", "list", "scan failed", err)
		}
		subjects = append(subjects, &subject)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("subject", "list", "iteration failed", err)
	}

	return subjects, nil
}
