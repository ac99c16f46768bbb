//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/infra"
	"smart-parking/internal/pkg/clock"
	"smart-parking/internal/pkg/password"
	"smart-parking/internal/usecase/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type UserCommandsTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	m    *txMocks
	cmds commands.UserCommands
}

func (s *UserCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.cmds = commands.NewUserCommands(s.m.uow, clock.NewFixedClock(fixedNow))
}

func (s *UserCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUserCommandsSuite(t *testing.T) {
	suite.Run(t, new(UserCommandsTestSuite))
}

func (s *UserCommandsTestSuite) TestCreate() {
	ctx := context.Background()
	in := commands.CreateUserInput{Name: "John Doe", Email: "John@Example.com", Password: "user123", Role: "user"}

	s.Run("hashes the password and normalises the email", func() {
		s.m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *user.User) error {
				s.Equal("john@example.com", u.Email().Value())
				s.Equal(user.RoleUser, u.Role())
				s.NoError(password.Compare(u.PasswordHash(), "user123"))
				s.Equal(fixedNow, u.CreatedAt())
				return nil
			})

		_, err := s.cmds.Create(ctx, in)
		s.NoError(err)
	})

	s.Run("duplicate email", func() {
		s.m.users.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("insert user", errors.New("23505"), infra.KindDuplicateKey))

		_, err := s.cmds.Create(ctx, in)
		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("short password", func() {
		bad := in
		bad.Password = "12345"
		_, err := s.cmds.Create(ctx, bad)
		s.ErrorIs(err, user.ErrPasswordTooWeak)
	})

	s.Run("unknown role", func() {
		bad := in
		bad.Role = "superuser"
		_, err := s.cmds.Create(ctx, bad)
		s.ErrorIs(err, user.ErrInvalidRole)
	})
}

func (s *UserCommandsTestSuite) TestReset() {
	gomock.InOrder(
		s.m.spots.EXPECT().DeleteAll(gomock.Any()).Return(nil),
		s.m.lots.EXPECT().DeleteAll(gomock.Any()).Return(nil),
		s.m.users.EXPECT().DeleteAll(gomock.Any()).Return(nil),
	)
	s.NoError(s.cmds.Reset(context.Background()))
}
