package utils

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidEmail carries the user-facing validation message.
var ErrInvalidEmail = errors.New("Enter a valid email address.")

// emailPattern requires a local part, an @, and a dotted domain. It is a
// format check, not a deliverability check.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ValidateEmail checks the address format. Empty input is a no-op so
// optional fields can share it.
func ValidateEmail(email string) error {
	if email == "" {
		return nil
	}
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

// CleanEmail validates and canonicalizes an address: trimmed, lowercased.
func CleanEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := ValidateEmail(email); err != nil {
		return "", err
	}
	return email, nil
}
