package commands

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

import (
	"context"

	"smart-parking/internal/domain/auth"
	"smart-parking/internal/domain/user"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/pkg/password"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  LoginUser
}

type LoginUser struct {
	ID    uuid.UUID
	Name  string
	Email string
	Role  user.Role
}

type AuthCommands interface {
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	issuer TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, issuer TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		issuer: issuer,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, err
	}

	creds, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(creds.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	token, err := a.issuer.GenerateToken(creds.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		Token: token,
		User: LoginUser{
			ID:    creds.ID,
			Name:  creds.Name,
			Email: creds.Email,
			Role:  role,
		},
	}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserCredentials, error) {
	creds, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Unknown email and wrong password look the same to the caller.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := password.Compare(creds.PasswordHash, credentials.Password()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	return creds, nil
}
