package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/studyroom/studyroom-api/internal/domain"
	"github.com/studyroom/studyroom-api/internal/store"
)

// mockUserStore implements store.UserStore with overridable function
// fields. Unset methods fail the contract by returning ErrUserNotFound
// or doing nothing, whichever is neutral for the test.
type mockUserStore struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	updateFn     func(ctx context.Context, user *domain.User) error
	deleteFn     func(ctx context.Context, id uuid.UUID) error

	createCalls int
	updateCalls int
}

var _ store.UserStore = (*mockUserStore)(nil)

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) Update(ctx context.Context, user *domain.User) error {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// mockSubjectStore implements store.SubjectStore with overridable
// function fields.
type mockSubjectStore struct {
	createFn func(ctx context.Context, subject *domain.Subject) error
	listFn   func(ctx context.Context) ([]*domain.Subject, error)

	createCalls int
}

var _ store.SubjectStore = (*mockSubjectStore)(nil)

func (m *mockSubjectStore) Create(ctx context.Context, subject *domain.Subject) error {
	m.createCalls++
	if m.createFn != nil {
		return m.createFn(ctx, subject)
	}
	return nil
}

func (m *mockSubjectStore) List(ctx context.Context) ([]*domain.Subject, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockSubjectStore) WithTx(tx *sql.Tx) store.SubjectStore {
	return m
}
