package errors

import "errors"

var (
	ErrNameRequired       = errors.New("name required")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPhoneRequired      = errors.New("phone required")
	ErrPasswordTooShort   = errors.New("password too short")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("not found")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
