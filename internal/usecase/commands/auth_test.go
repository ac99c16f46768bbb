//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/pkg/password"
	"smart-parking/internal/usecase/commands"
	"smart-parking/tests/common/builder"
	commandsmock "smart-parking/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	m      *txMocks
	issuer *commandsmock.MockTokenIssuer
	cmds   commands.AuthCommands
	hash   string
}

func (s *AuthCommandsTestSuite) SetupSuite() {
	hash, err := password.Hash("admin123")
	s.Require().NoError(err)
	s.hash = hash
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.m = newTxMocks(s.ctrl)
	s.issuer = commandsmock.NewMockTokenIssuer(s.ctrl)
	s.cmds = commands.NewAuthCommands(s.m.uow, s.issuer)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()
	creds := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
		b.Email = "admin@smartpark.com"
		b.PasswordHash = s.hash
	}).BuildCredentials()

	s.Run("issues a token for valid credentials", func() {
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), "admin@smartpark.com").Return(creds, nil)
		s.issuer.EXPECT().GenerateToken(creds.ID, user.RoleAdmin).Return("signed.jwt", nil)

		res, err := s.cmds.Login(ctx, commands.LoginInput{Email: "Admin@SmartPark.com", Password: "admin123"})
		s.Require().NoError(err)
		s.Equal("signed.jwt", res.Token)
		s.Equal(creds.ID, res.User.ID)
		s.Equal(user.RoleAdmin, res.User.Role)
	})

	s.Run("wrong password", func() {
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), "admin@smartpark.com").Return(creds, nil)

		_, err := s.cmds.Login(ctx, commands.LoginInput{Email: "admin@smartpark.com", Password: "nope"})
		s.ErrorIs(err, errs.ErrInvalidCredentials)
	})

	s.Run("unknown email looks like a wrong password", func() {
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), "ghost@smartpark.com").Return(nil, notFound("user"))

		_, err := s.cmds.Login(ctx, commands.LoginInput{Email: "ghost@smartpark.com", Password: "admin123"})
		s.ErrorIs(err, errs.ErrInvalidCredentials)
		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})

	s.Run("malformed input is a validation error", func() {
		_, err := s.cmds.Login(ctx, commands.LoginInput{Email: "not-an-email", Password: "x"})
		s.True(errs.Is(err, errs.ErrValidation))
	})

	s.Run("signing failure", func() {
		s.m.reads.EXPECT().UserByEmail(gomock.Any(), "admin@smartpark.com").Return(creds, nil)
		s.issuer.EXPECT().GenerateToken(gomock.Any(), gomock.Any()).Return("", errors.New("no key"))

		_, err := s.cmds.Login(ctx, commands.LoginInput{Email: "admin@smartpark.com", Password: "admin123"})
		s.True(errs.Is(err, commands.ErrTokenGeneration))
	})
}
