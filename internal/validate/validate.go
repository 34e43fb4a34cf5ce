// Package validate holds the pure input checks for registration and login.
// Checks run in a fixed order and stop at the first failure.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	apperrors "github.com/xxxsen/webgate/internal/pkg/errors"
)

const minPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func Registration(name, email, phone, plainPassword string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.ErrNameRequired
	}
	if !emailPattern.MatchString(NormalizeEmail(email)) {
		return apperrors.ErrInvalidEmail
	}
	if strings.TrimSpace(phone) == "" {
		return apperrors.ErrPhoneRequired
	}
	if utf8.RuneCountInString(plainPassword) < minPasswordLen {
		return apperrors.ErrPasswordTooShort
	}
	return nil
}

func Login(email, plainPassword string) error {
	if !emailPattern.MatchString(NormalizeEmail(email)) {
		return apperrors.ErrInvalidEmail
	}
	if utf8.RuneCountInString(plainPassword) < minPasswordLen {
		return apperrors.ErrPasswordTooShort
	}
	return nil
}
