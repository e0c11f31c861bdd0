package domain

import (
	"regexp"
	"unicode"
	"unicode/utf8"
)

// Validation policies encapsulate the field rules the entities enforce.
// They are plain values so the rules can evolve (or be replaced in tests)
// without touching the entities or the use cases that trigger them.

// LengthPolicy validates that a string's rune count falls within [Min, Max].
// An empty string fails with TooShort; there is no separate "required" error.
type LengthPolicy struct {
	Min      int
	Max      int
	TooShort error
	TooLong  error
}

// Validate returns nil when s is within bounds, TooShort or TooLong otherwise.
// It is side-effect free and safe to call repeatedly with the same input.
func (p LengthPolicy) Validate(s string) error {
	n := utf8.RuneCountInString(s)
	if n < p.Min {
		return p.TooShort
	}
	if n > p.Max {
		return p.TooLong
	}
	return nil
}

// PatternPolicy validates a string against a compiled regular expression.
type PatternPolicy struct {
	Pattern *regexp.Regexp
	Err     error
}

// Validate returns nil when s matches the pattern, Err otherwise.
func (p PatternPolicy) Validate(s string) error {
	if !p.Pattern.MatchString(s) {
		return p.Err
	}
	return nil
}

// PasswordPolicy validates password strength: at least MinLength characters,
// at least one uppercase letter, one lowercase letter, one digit and one
// special (non-word) character, and no spaces anywhere.
//
// Go's regexp package has no lookaheads, so the character classes are
// checked with rune scans rather than a single pattern.
type PasswordPolicy struct {
	MinLength int
	Err       error
}

// Validate returns nil when the password satisfies every requirement,
// Err otherwise. A single combined error covers all failure modes.
func (p PasswordPolicy) Validate(password string) error {
	var upper, lower, digit, special bool
	n := 0
	for _, r := range password {
		n++
		switch {
		case unicode.IsSpace(r):
			return p.Err
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case r != '_':
			// Anything that is not a letter, digit, underscore or space
			// counts as a special character.
			special = true
		}
	}
	if n < p.MinLength || !upper || !lower || !digit || !special {
		return p.Err
	}
	return nil
}

// emailPattern requires exactly one @ with non-whitespace on both sides and
// a dot somewhere in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Default policies wired into the entity constructors and setters.
var (
	// SubjectNamePolicy bounds a subject's full name to 3-100 characters.
	SubjectNamePolicy = LengthPolicy{
		Min:      3,
		Max:      100,
		TooShort: ErrSubjectNameTooShort,
		TooLong:  ErrSubjectNameTooLong,
	}

	// UserFullNamePolicy bounds a user's full name to 3-100 characters.
	UserFullNamePolicy = LengthPolicy{
		Min:      3,
		Max:      100,
		TooShort: ErrFullNameTooShort,
		TooLong:  ErrFullNameTooLong,
	}

	// DefaultEmailPolicy accepts addresses of the form local@domain.tld.
	DefaultEmailPolicy = PatternPolicy{
		Pattern: emailPattern,
		Err:     ErrInvalidEmail,
	}

	// DefaultPasswordPolicy requires 8+ characters drawn from all four
	// character classes, with no embedded spaces.
	DefaultPasswordPolicy = PasswordPolicy{
		MinLength: 8,
		Err:       ErrInvalidPassword,
	}
)
