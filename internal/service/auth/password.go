package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Password scheme names accepted in configuration.
const (
	SchemePlain  = "plain"
	SchemeBcrypt = "bcrypt"
)

// PasswordHasher converts a plaintext password into its stored form.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// PasswordVerifier compares a candidate password against a stored one.
type PasswordVerifier interface {
	// Compare reports whether candidate matches stored. An error is
	// returned only for operational failures, never for a mismatch.
	Compare(stored, candidate string) (bool, error)
}

// PlaintextHasher stores passwords as-is.
type PlaintextHasher struct{}

func (PlaintextHasher) Hash(password string) (string, error) {
	return password, nil
}

// PlaintextVerifier compares passwords in constant time to avoid leaking
// prefix length through timing.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Compare(stored, candidate string) (bool, error) {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1, nil
}

// BcryptHasher stores passwords as bcrypt hashes.
type BcryptHasher struct {
	// Cost is the bcrypt work factor. Zero means bcrypt.DefaultCost.
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// BcryptVerifier compares a candidate against a stored bcrypt hash.
type BcryptVerifier struct{}

func (BcryptVerifier) Compare(stored, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate))
	switch err {
	case nil:
		return true, nil
	case bcrypt.ErrMismatchedHashAndPassword:
		return false, nil
	default:
		return false, fmt.Errorf("failed to compare password: %w", err)
	}
}

// NewHasher returns the PasswordHasher for the configured scheme.
func NewHasher(scheme string) (PasswordHasher, error) {
	switch scheme {
	case SchemePlain:
		return PlaintextHasher{}, nil
	case SchemeBcrypt:
		return BcryptHasher{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPasswordScheme, scheme)
	}
}

// NewVerifier returns the PasswordVerifier for the configured scheme.
func NewVerifier(scheme string) (PasswordVerifier, error) {
	switch scheme {
	case SchemePlain:
		return PlaintextVerifier{}, nil
	case SchemeBcrypt:
		return BcryptVerifier{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPasswordScheme, scheme)
	}
}
