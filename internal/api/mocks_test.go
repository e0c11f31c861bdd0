package api

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/studyroom/studyroom-api/internal/domain"
	"github.com/studyroom/studyroom-api/internal/service"
	"github.com/studyroom/studyroom-api/internal/service/auth"
)

// mockUserService implements UserService with overridable function fields.
type mockUserService struct {
	registerFn      func(ctx context.Context, input service.RegisterInput) (*domain.User, error)
	authenticateFn  func(ctx context.Context, email, password string) (*domain.User, error)
	getByIDFn       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	updateProfileFn func(ctx context.Context, id uuid.UUID, input service.UpdateProfileInput) (*domain.User, error)
	deleteFn        func(ctx context.Context, id uuid.UUID) error
}

var _ UserService = (*mockUserService)(nil)

func (m *mockUserService) Register(ctx context.Context, input service.RegisterInput) (*domain.User, error) {
	return m.registerFn(ctx, input)
}

func (m *mockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	return m.authenticateFn(ctx, email, password)
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, id uuid.UUID, input service.UpdateProfileInput) (*domain.User, error) {
	return m.updateProfileFn(ctx, id, input)
}

func (m *mockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

// mockSubjectService implements SubjectService with overridable function
// fields.
type mockSubjectService struct {
	createFn func(ctx context.Context, fullName string) (*domain.Subject, error)
	listFn   func(ctx context.Context) ([]*domain.Subject, error)
}

var _ SubjectService = (*mockSubjectService)(nil)

func (m *mockSubjectService) Create(ctx context.Context, fullName string) (*domain.Subject, error) {
	return m.createFn(ctx, fullName)
}

func (m *mockSubjectService) List(ctx context.Context) ([]*domain.Subject, error) {
	return m.listFn(ctx)
}

// mockJWTService issues a fixed token and accepts any validation call.
type mockJWTService struct {
	token       string
	generateErr error
	claims      *auth.Claims
	validateErr error
}

var _ auth.JWTService = (*mockJWTService)(nil)

func (m *mockJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.generateErr != nil {
		return "", m.generateErr
	}
	if m.token == "" {
		return "test-token", nil
	}
	return m.token, nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if m.validateErr != nil {
		return nil, m.validateErr
	}
	if m.claims == nil {
		return nil, errors.New("no claims configured")
	}
	return m.claims, nil
}
