package bootstrap

import (
	"band-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	components.DomainModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
