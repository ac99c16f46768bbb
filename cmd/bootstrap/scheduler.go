package bootstrap

import (
	"context"
	"log/slog"

	"smart-parking/internal/pkg/config"
	"smart-parking/internal/usecase/commands"
	"smart-parking/internal/worker"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

// StartScheduler does nothing unless SIMULATION_SCHEDULE is set.
func StartScheduler(lc fx.Lifecycle, cfg config.Config, cmds commands.SpotCommands, logger *slog.Logger) error {
	if cfg.Simulation.Schedule == "" {
		return nil
	}

	scheduler, err := worker.NewScheduler(cfg.Simulation.Schedule, worker.NewSimulationJob(cmds, logger), logger)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			return nil
		},
		OnStop: scheduler.Stop,
	})
	return nil
}
