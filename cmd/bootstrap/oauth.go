package bootstrap

import (
	"log/slog"

	"tos-api/internal/infra/oauth"
	"tos-api/internal/pkg/config"
	"tos-api/internal/usecase"

	"go.uber.org/fx"
)

var OAuthModule = fx.Module("oauth",
	fx.Provide(
		fx.Annotate(
			NewTokenInfoClient,
			fx.As(new(usecase.TokenInfoClient)),
		),
	),
)

func NewTokenInfoClient(cfg config.Config, logger *slog.Logger) (*oauth.TokenInfoClient, error) {
	return oauth.NewTokenInfoClient(cfg.OAuth, logger)
}
