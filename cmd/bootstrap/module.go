package bootstrap

import (
	"smart-parking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule wires configuration, persistence and use cases. The seed tool
// runs on it without the HTTP layer.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	components.PersistenceModule,
	JWTModule,
	MetricsModule,
	components.UseCaseModule,
)

var Module = fx.Options(
	CoreModule,
	components.HandlerModule,
	SchedulerModule,
)
