package commands

//go:generate mockgen -source=user.go -destination=../../../tests/mock/commands/user_mock.go -package=commandsmock

import (
	"context"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/pkg/password"
	"smart-parking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrEmailTaken = errs.Mark(errs.New("email already registered"), errs.ErrConflict)

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// UserCommands manages accounts. Only the seeding tool uses it; there is no
// registration endpoint.
type UserCommands interface {
	Create(ctx context.Context, in CreateUserInput) (uuid.UUID, error)
	// Reset wipes users, lots and spots.
	Reset(ctx context.Context) error
}

type userCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUserCommands(uow shared.UnitOfWork, clk clock.Clock) UserCommands {
	return &userCommandsImpl{uow: uow, clock: clk}
}

func (uc *userCommandsImpl) Create(ctx context.Context, in CreateUserInput) (uuid.UUID, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return uuid.Nil, err
	}
	pw, err := user.NewPassword(in.Password)
	if err != nil {
		return uuid.Nil, err
	}
	role, err := user.NewRole(in.Role)
	if err != nil {
		return uuid.Nil, err
	}

	hash, err := password.Hash(pw.Value())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "hash password")
	}

	u, err := user.NewUser(in.Name, email, hash, role, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return uuid.Nil, ErrEmailTaken
		}
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (uc *userCommandsImpl) Reset(ctx context.Context) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Spots().DeleteAll(ctx); err != nil {
			return err
		}
		if err := tx.Lots().DeleteAll(ctx); err != nil {
			return err
		}
		return tx.Users().DeleteAll(ctx)
	})
}
