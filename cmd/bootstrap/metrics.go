package bootstrap

import (
	"smart-parking/internal/pkg/metrics"
	"smart-parking/internal/usecase/commands"

	"go.uber.org/fx"
)

// MetricsModule is always installed; METRICS_ENABLED only controls whether the
// router exposes the collectors.
var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
		func(m *metrics.Metrics) commands.SimulationObserver { return m },
	),
)
