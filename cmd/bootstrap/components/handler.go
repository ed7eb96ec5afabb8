package components

import (
	"tos-api/internal/handler"
	"tos-api/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTOSHandler,
		api.NewStatusHandler,
	),
	fx.Invoke(handler.NewRouter),
)
