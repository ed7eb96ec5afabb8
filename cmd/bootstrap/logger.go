package bootstrap

import (
	"log/slog"

	"tos-api/internal/handler/middleware"
	"tos-api/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

// NewLogger shares the request logger's level and time format with the rest
// of the application.
func NewLogger(cfg config.Config) *slog.Logger {
	return middleware.NewLogger(cfg.Log).GetSlogLogger()
}
