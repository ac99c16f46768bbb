package auth

import (
	"smart-parking/internal/domain/user"
	"smart-parking/internal/pkg/errs"
)

var ErrEmptyPassword = errs.Mark(errs.New("password is required"), errs.ErrValidation)

type Credentials struct {
	email    user.Email
	password string
}

// NewCredentials only checks shape. Password strength is a registration concern.
func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}
	if passwordStr == "" {
		return Credentials{}, ErrEmptyPassword
	}

	return Credentials{
		email:    email,
		password: passwordStr,
	}, nil
}

func (c Credentials) Email() user.Email {
	return c.email
}

func (c Credentials) Password() string {
	return c.password
}
