package components

import (
	"log/slog"

	"tos-api/internal/pkg/clock"
	"tos-api/internal/pkg/config"
	"tos-api/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseAuthModule,
	usecaseStatusModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseAuthModule = fx.Module("usecase/auth",
	fx.Provide(
		func(client usecase.TokenInfoClient, cfg config.Config, logger *slog.Logger) usecase.Authorizer {
			return usecase.NewGoogleOAuthAuthorizer(client, cfg.OAuth, logger)
		},
	),
)

var usecaseStatusModule = fx.Module("usecase/status",
	fx.Provide(
		func(clk clock.Clock, cfg config.Config) *usecase.StatusCache {
			return usecase.NewStatusCacheFromConfig(clk, cfg.Status)
		},
		usecase.NewStatusReporter,
	),
)
