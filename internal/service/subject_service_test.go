package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyroom/studyroom-api/internal/domain"
	"github.com/studyroom/studyroom-api/internal/store"
)

func newSubjectService(subjectStore store.SubjectStore) *SubjectService {
	return NewSubjectService(nil, subjectStore, nil)
}

func TestCreateSubject(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		mock := &mockSubjectStore{}
		svc := newSubjectService(mock)

		subject, err := svc.Create(context.Background(), "")
		assert.Nil(t, subject)
		assert.ErrorIs(t, err, ErrValidation)
		assert.EqualError(t, err, "The subject's full name is required")
		assert.Zero(t, mock.createCalls)
	})

	t.Run("name too short", func(t *testing.T) {
		mock := &mockSubjectStore{}
		svc := newSubjectService(mock)

		subject, err := svc.Create(context.Background(), "Ma")
		assert.Nil(t, subject)
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, domain.ErrSubjectNameTooShort)
		assert.EqualError(t, err, "Name must be at least 3 characters long.")
		assert.Zero(t, mock.createCalls)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		var created *domain.Subject
		mock := &mockSubjectStore{
			createFn: func(ctx context.Context, subject *domain.Subject) error {
				created = subject
				return nil
			},
		}
		svc := newSubjectService(mock)

		subject, err := svc.Create(context.Background(), "  Mathematics  ")
		require.NoError(t, err)
		assert.Equal(t, "Mathematics", subject.FullName)
		require.NotNil(t, created)
		assert.Equal(t, subject, created)
	})

	t.Run("whitespace-only name fails length validation", func(t *testing.T) {
		mock := &mockSubjectStore{}
		svc := newSubjectService(mock)

		_, err := svc.Create(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, domain.ErrSubjectNameTooShort)
		assert.Zero(t, mock.createCalls)
	})

	t.Run("success", func(t *testing.T) {
		mock := &mockSubjectStore{}
		svc := newSubjectService(mock)

		subject, err := svc.Create(context.Background(), "Mathematics")
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, subject.ID)
		assert.Equal(t, "Mathematics", subject.FullName)
		assert.Equal(t, 1, mock.createCalls)
	})

	t.Run("duplicate name", func(t *testing.T) {
		mock := &mockSubjectStore{
			createFn: func(ctx context.Context, subject *domain.Subject) error {
				return store.ErrSubjectNameExists
			},
		}
		svc := newSubjectService(mock)

		_, err := svc.Create(context.Background(), "Mathematics")
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("infrastructure failure", func(t *testing.T) {
		mock := &mockSubjectStore{
			createFn: func(ctx context.Context, subject *domain.Subject) error {
				return errors.New("connection reset")
			},
		}
		svc := newSubjectService(mock)

		_, err := svc.Create(context.Background(), "Mathematics")
		assert.ErrorIs(t, err, ErrUnexpected)
		assert.EqualError(t, err, "Error creating subject: connection reset")
	})
}

func TestListSubjects(t *testing.T) {
	t.Run("passes the store result through untouched", func(t *testing.T) {
		now := time.Now().UTC()
		stored := []*domain.Subject{
			{ID: uuid.New(), FullName: "Mathematics", CreatedAt: now, UpdatedAt: now},
			{ID: uuid.New(), FullName: "Physics", CreatedAt: now, UpdatedAt: now},
		}
		mock := &mockSubjectStore{
			listFn: func(ctx context.Context) ([]*domain.Subject, error) {
				return stored, nil
			},
		}
		svc := newSubjectService(mock)

		subjects, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, subjects)
	})

	t.Run("nil from the store stays nil", func(t *testing.T) {
		svc := newSubjectService(&mockSubjectStore{})

		subjects, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Nil(t, subjects)
	})

	t.Run("store failure wrapped unexpected", func(t *testing.T) {
		mock := &mockSubjectStore{
			listFn: func(ctx context.Context) ([]*domain.Subject, error) {
				return nil, errors.New("connection reset")
			},
		}
		svc := newSubjectService(mock)

		_, err := svc.List(context.Background())
		assert.ErrorIs(t, err, ErrUnexpected)
	})
}
