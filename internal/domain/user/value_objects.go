package user

import (
	"regexp"
	"strings"

	"smart-parking/internal/pkg/errs"
)

var (
	ErrInvalidEmail    = errs.Mark(errs.New("invalid email format"), errs.ErrValidation)
	ErrInvalidRole     = errs.Mark(errs.New("invalid role"), errs.ErrValidation)
	ErrEmptyName       = errs.Mark(errs.New("name is required"), errs.ErrValidation)
	ErrPasswordTooWeak = errs.Mark(errs.New("password must be at least 6 characters long"), errs.ErrValidation)
)

const MinPasswordLength = 6

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

// NewEmail lower-cases the address so lookups are case-insensitive.
func NewEmail(s string) (Email, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if !emailRegex.MatchString(s) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: s}, nil
}

func (e Email) Value() string {
	return e.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if len(s) < MinPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}
