package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"smart-parking/cmd/bootstrap"
	"smart-parking/internal/seed"
	"smart-parking/internal/usecase/commands"

	"go.uber.org/fx"
)

const seedTimeout = 2 * time.Minute

func main() {
	os.Exit(run())
}

func run() int {
	var (
		users  commands.UserCommands
		lots   commands.LotCommands
		logger *slog.Logger
	)

	app := fx.New(
		bootstrap.CoreModule,
		fx.NopLogger,
		fx.Populate(&users, &lots, &logger),
	)
	if err := app.Err(); err != nil {
		slog.Error("failed to build seed application", "error", err)
		return 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		slog.Error("failed to start seed application", "error", err)
		return 1
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			logger.Warn("failed to stop seed application cleanly", "error", err)
		}
	}()

	if err := seed.NewSeeder(users, lots, logger).Run(ctx); err != nil {
		logger.Error("seeding failed", "error", err)
		return 1
	}
	logger.Info("admin login: admin@smartpark.com / admin123, user login: john@example.com or jane@example.com / user123")
	return 0
}
