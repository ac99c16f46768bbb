package worker

import (
	"context"
	"log/slog"
	"time"

	"smart-parking/internal/pkg/errs"
	"smart-parking/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

const defaultRunTimeout = 30 * time.Second

// SimulationJob runs one occupancy simulation pass over every lot.
type SimulationJob struct {
	cmds    commands.SpotCommands
	logger  *slog.Logger
	timeout time.Duration
}

func NewSimulationJob(cmds commands.SpotCommands, logger *slog.Logger) *SimulationJob {
	return &SimulationJob{cmds: cmds, logger: logger, timeout: defaultRunTimeout}
}

// Run implements cron.Job.
func (j *SimulationJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	changed, err := j.cmds.SimulateAll(ctx)
	if err != nil {
		j.logger.Error("scheduled simulation failed",
			slog.Int("changed", changed),
			slog.String("error", err.Error()))
		return
	}
	j.logger.Info("scheduled simulation finished", slog.Int("changed", changed))
}

type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

// NewScheduler registers job under the cron schedule. Overlapping runs are skipped.
func NewScheduler(schedule string, job cron.Job, logger *slog.Logger) (*Scheduler, error) {
	cl := cronLogger{logger: logger}
	c := cron.New(
		cron.WithLogger(cl),
		cron.WithChain(cron.SkipIfStillRunning(cl), cron.Recover(cl)),
	)
	if _, err := c.AddJob(schedule, job); err != nil {
		return nil, errs.Wrapf(err, "invalid simulation schedule %q", schedule)
	}
	return &Scheduler{cron: c, logger: logger}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("simulation scheduler started", slog.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for a running job to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{"error", err}, keysAndValues...)...)
}
