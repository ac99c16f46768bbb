package seed

import (
	"context"
	"log/slog"

	"smart-parking/internal/domain/user"
	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/commands"
)

var Users = []commands.CreateUserInput{
	{Name: "Admin", Email: "admin@smartpark.com", Password: "admin123", Role: user.RoleAdmin.String()},
	{Name: "John Doe", Email: "john@example.com", Password: "user123", Role: user.RoleUser.String()},
	{Name: "Jane Smith", Email: "jane@example.com", Password: "user123", Role: user.RoleUser.String()},
}

var Lots = []commands.CreateLotInput{
	{
		Name:          "Mall A - Floor 1",
		Location:      "Ground Floor, Mall A",
		TotalCapacity: 15,
		Description:   strPtr("Main parking area on ground floor"),
	},
	{
		Name:          "Mall B - Floor 2",
		Location:      "Second Floor, Mall B",
		TotalCapacity: 15,
		Description:   strPtr("Upper level parking with easy access to restaurants"),
	},
}

type Seeder struct {
	users  commands.UserCommands
	lots   commands.LotCommands
	logger *slog.Logger
}

func NewSeeder(users commands.UserCommands, lots commands.LotCommands, logger *slog.Logger) *Seeder {
	return &Seeder{users: users, lots: lots, logger: logger}
}

// Run wipes every lot, spot and user and recreates the sample data. Lots go
// through the lot commands so their spots are provisioned the usual way.
func (s *Seeder) Run(ctx context.Context) error {
	s.logger.Info("clearing existing data")
	if err := s.users.Reset(ctx); err != nil {
		return errs.Wrap(err, "clear data")
	}

	for _, in := range Users {
		if _, err := s.users.Create(ctx, in); err != nil {
			return errs.Wrapf(err, "create user %s", in.Email)
		}
	}
	s.logger.Info("users created", slog.Int("count", len(Users)))

	spots := 0
	for _, in := range Lots {
		id, err := s.lots.Create(ctx, in)
		if err != nil {
			return errs.Wrapf(err, "create lot %q", in.Name)
		}
		spots += in.TotalCapacity
		s.logger.Info("lot created", slog.String("lot_id", id.String()), slog.String("name", in.Name))
	}

	s.logger.Info("seeding completed",
		slog.Int("users", len(Users)),
		slog.Int("lots", len(Lots)),
		slog.Int("spots", spots))
	return nil
}

func strPtr(s string) *string { return &s }
