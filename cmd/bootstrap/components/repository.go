package components

import (
	"log/slog"

	"tos-api/internal/infra/datastore"
	"tos-api/internal/infra/db"
	"tos-api/internal/pkg/clock"
	"tos-api/internal/pkg/config"
	"tos-api/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			db.NewQueries,
			fx.As(new(datastore.Queries)),
		),
		fx.Annotate(
			NewDatastoreClient,
			fx.As(new(usecase.ResponseStore)),
			fx.As(new(usecase.HealthProber)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewDatastoreClient(queries datastore.Queries, cfg config.Config, clk clock.Clock, logger *slog.Logger) *datastore.Client {
	return datastore.NewClient(queries, cfg, clk, logger)
}
