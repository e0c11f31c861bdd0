package domain

import (
	"crypto/subtle"
	"time"

	"github.com/google/uuid"
)

// User represents a registered user of the application.
//
// FullName and Email are re-validated on every mutation. Password is the
// stored credential: it is validated and set only at construction and is
// afterwards only ever compared, never re-validated. Whether the stored
// value is plaintext or a hash is decided by the service layer's password
// scheme; CheckPassword compares against the stored value as-is.
type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // Never expose the credential in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser creates a User with the given ID and field values.
// All four fields are validated; the first failing policy wins.
func NewUser(id uuid.UUID, fullName, email, password string) (*User, error) {
	if err := UserFullNamePolicy.Validate(fullName); err != nil {
		return nil, err
	}
	if err := DefaultEmailPolicy.Validate(email); err != nil {
		return nil, err
	}
	if err := DefaultPasswordPolicy.Validate(password); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &User{
		ID:        id,
		FullName:  fullName,
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// SetFullName changes the user's full name after re-validating it.
// The user is left unchanged on failure.
func (u *User) SetFullName(fullName string) error {
	if err := UserFullNamePolicy.Validate(fullName); err != nil {
		return err
	}

	u.FullName = fullName
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// SetEmail changes the user's email after re-validating it.
// The user is left unchanged on failure.
func (u *User) SetEmail(email string) error {
	if err := DefaultEmailPolicy.Validate(email); err != nil {
		return err
	}

	u.Email = email
	u.UpdatedAt = time.Now().UTC()
	return nil
}

// CheckPassword reports whether candidate exactly equals the stored
// credential. The comparison is case-sensitive, applies no normalization
// and runs in constant time. It never fails for a mismatch.
func (u *User) CheckPassword(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(u.Password), []byte(candidate)) == 1
}
