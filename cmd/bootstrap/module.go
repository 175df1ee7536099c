package bootstrap

import (
	"hotel-simulator/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.DomainModule,
	components.UseCaseModule,
	components.HandlerModule,
	components.ConsoleModule,
)
