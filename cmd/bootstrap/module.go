package bootstrap

import (
	"tos-api/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	OAuthModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
