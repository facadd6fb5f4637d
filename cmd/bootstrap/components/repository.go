package components

import (
	"ticketgate/internal/infra/cache"
	repo_impl "ticketgate/internal/infra/repository"
	"ticketgate/internal/pkg/config"
	"ticketgate/internal/usecase"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			repo_impl.NewTicketRepository,
			fx.As(new(usecase.CheckInRepository)),
		),
		fx.Annotate(
			repo_impl.NewEventRepository,
			fx.As(new(usecase.EventRepository)),
		),
		fx.Annotate(
			repo_impl.NewReportRepository,
			fx.As(new(usecase.ReportRepository)),
		),
		fx.Annotate(
			NewReportCache,
			fx.As(new(usecase.ReportCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) repo_impl.DBTX {
	return pool
}

func NewReportCache(client *redis.Client, cfg config.Config) *cache.ReportCache {
	return cache.NewReportCache(client, cfg.Report.CacheTTL)
}
