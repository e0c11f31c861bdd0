package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser(t *testing.T) *User {
	t.Helper()
	user, err := NewUser(uuid.New(), "John Doe", "john@example.com", "@Teste123")
	require.NoError(t, err)
	return user
}

func TestNewUser(t *testing.T) {
	id := uuid.New()

	user, err := NewUser(id, "John Doe", "john@example.com", "@Teste123")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "John Doe", user.FullName)
	assert.Equal(t, "john@example.com", user.Email)
	assert.Equal(t, "@Teste123", user.Password)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.UpdatedAt.IsZero())
}

func TestNewUserValidation(t *testing.T) {
	tests := []struct {
		name     string
		fullName string
		email    string
		password string
		wantErr  error
	}{
		{"name_too_short", "Jo", "john@example.com", "@Teste123", ErrFullNameTooShort},
		{"name_empty", "", "john@example.com", "@Teste123", ErrFullNameTooShort},
		{"name_too_long", strings.Repeat("a", 101), "john@example.com", "@Teste123", ErrFullNameTooLong},
		{"name_at_bounds", strings.Repeat("a", 100), "john@example.com", "@Teste123", nil},
		{"invalid_email", "John Doe", "invalid-email", "@Teste123", ErrInvalidEmail},
		{"weak_password", "John Doe", "john@example.com", "weak", ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(uuid.New(), tt.fullName, tt.email, tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestUserSetFullName(t *testing.T) {
	user := validUser(t)

	require.NoError(t, user.SetFullName("Jane Doe"))
	assert.Equal(t, "Jane Doe", user.FullName)

	err := user.SetFullName("Jo")
	assert.ErrorIs(t, err, ErrFullNameTooShort)
	assert.Equal(t, "Jane Doe", user.FullName)
}

func TestUserSetEmail(t *testing.T) {
	user := validUser(t)

	require.NoError(t, user.SetEmail("jane@example.com"))
	assert.Equal(t, "jane@example.com", user.Email)

	err := user.SetEmail("invalid-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
	assert.Equal(t, "jane@example.com", user.Email)
}

func TestUserCheckPassword(t *testing.T) {
	user := validUser(t)

	assert.True(t, user.CheckPassword("@Teste123"))
	assert.False(t, user.CheckPassword("WrongPassword123!"))
	// Case-sensitive, no normalization.
	assert.False(t, user.CheckPassword("@teste123"))
	assert.False(t, user.CheckPassword("@Teste123 "))
	assert.False(t, user.CheckPassword(""))
}
