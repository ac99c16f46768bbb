//go:build unit

package worker_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"smart-parking/internal/worker"
	commandsmock "smart-parking/tests/mock/commands"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSimulationJob_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	cmds := commandsmock.NewMockSpotCommands(ctrl)

	t.Run("runs every lot with a deadline", func(t *testing.T) {
		cmds.EXPECT().SimulateAll(gomock.Any()).DoAndReturn(func(ctx context.Context) (int, error) {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return 7, nil
		})
		worker.NewSimulationJob(cmds, discard()).Run()
	})

	t.Run("failure is logged, not raised", func(t *testing.T) {
		cmds.EXPECT().SimulateAll(gomock.Any()).Return(2, errors.New("db gone"))
		assert.NotPanics(t, worker.NewSimulationJob(cmds, discard()).Run)
	})
}

func TestNewScheduler_InvalidSpec(t *testing.T) {
	_, err := worker.NewScheduler("every now and then", cron.FuncJob(func() {}), discard())
	assert.ErrorContains(t, err, "invalid simulation schedule")
}

func TestScheduler_RunsAndStops(t *testing.T) {
	var runs atomic.Int32
	s, err := worker.NewScheduler("@every 1s", cron.FuncJob(func() { runs.Add(1) }), discard())
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestScheduler_RecoversFromPanics(t *testing.T) {
	var runs atomic.Int32
	s, err := worker.NewScheduler("@every 1s", cron.FuncJob(func() {
		runs.Add(1)
		panic("job exploded")
	}), discard())
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool { return runs.Load() >= 2 }, 4*time.Second, 50*time.Millisecond)
	assert.NoError(t, s.Stop(context.Background()))
}

func TestScheduler_KeepsRunningAfterPanic(t *testing.T) {
	var calls, healthy atomic.Int32
	s, err := worker.NewScheduler("@every 1s", cron.FuncJob(func() {
		if calls.Add(1) == 1 {
			panic("first run exploded")
		}
		healthy.Add(1)
	}), discard())
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool { return healthy.Load() >= 1 }, 4*time.Second, 50*time.Millisecond)
	assert.NoError(t, s.Stop(context.Background()))
}
