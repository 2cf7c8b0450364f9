package utils

import (
	"errors"
	"regexp"

	"github.com/nyaruka/phonenumbers"
)

// phoneRegion is the numbering plan used for parsing bare national numbers.
const phoneRegion = "CA"

// ErrInvalidPhone carries the user-facing validation message.
var ErrInvalidPhone = errors.New("Enter a valid Canadian phone number (e.g. (506) 234-5678)")

// loosePhonePattern accepts an optional +1/1 prefix and common separators
// around a 10-digit national number. It is only a pre-check; numbers that
// pass it can still fail numbering-plan validation.
var loosePhonePattern = regexp.MustCompile(`^(\+?1[\s\-.]?)?\(?\d{3}\)?[\s\-.]?\d{3}[\s\-.]?\d{4}$`)

var (
	phoneSeparators = regexp.MustCompile(`[\s\-.()]+`)
	tenDigitNANP    = regexp.MustCompile(`^[2-9]\d{9}$`)
	elevenDigitNANP = regexp.MustCompile(`^1[2-9]\d{9}$`)
)

// ValidatePhone checks a raw phone string against the loose format and the
// Canadian numbering plan. A number with a structurally invalid area code
// (leading 0 or 1) or exchange code (leading 0) is rejected even though it
// matches the loose pattern.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	if !loosePhonePattern.MatchString(phone) {
		return ErrInvalidPhone
	}
	parsed, err := phonenumbers.Parse(phone, phoneRegion)
	if err != nil {
		return ErrInvalidPhone
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return ErrInvalidPhone
	}
	return nil
}

// CleanPhone validates and canonicalizes a phone string to E.164
// (leading +, country code, digits, no separators). Empty input is a
// no-op for optional fields.
func CleanPhone(phone string) (string, error) {
	if phone == "" {
		return "", nil
	}
	if err := ValidatePhone(phone); err != nil {
		return "", err
	}
	parsed, err := phonenumbers.Parse(phone, phoneRegion)
	if err != nil {
		return "", ErrInvalidPhone
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// NormalizeLoose is the best-effort normalizer used where full
// numbering-plan validation is not wanted: strip separators, prefix +1
// for a bare 10-digit number, convert a leading trunk 1 to +1, and
// otherwise return the input unchanged.
func NormalizeLoose(phone string) string {
	if phone == "" {
		return phone
	}
	cleaned := phoneSeparators.ReplaceAllString(phone, "")
	switch {
	case tenDigitNANP.MatchString(cleaned):
		return "+1" + cleaned
	case elevenDigitNANP.MatchString(cleaned):
		return "+" + cleaned
	default:
		return phone
	}
}
