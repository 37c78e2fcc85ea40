//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"launchpizza/internal/handlers/rest/order_delete"
	"launchpizza/internal/handlers/rest/order_get"
	"launchpizza/internal/handlers/rest/order_patch"
	"launchpizza/internal/handlers/rest/orders_get"
	"launchpizza/internal/handlers/rest/orders_post"
	"launchpizza/internal/handlers/tasks/order_stats"
	"launchpizza/internal/pkg/config"

	orderRepo "launchpizza/internal/repository/order"
	orderService "launchpizza/internal/service/order"

	"launchpizza/pkg/background"
	"launchpizza/pkg/logger"
	"launchpizza/pkg/querier"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	OrderStatsInterval time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_post.Service
	orders_get.Service
	order_get.Service
	order_patch.Service
	order_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideListStatus,
		orderService.New,

		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		provideOrderStatsInterval,
		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(order_stats.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher orderService.EventPublisher,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideOrderRepository,
		provideListStatus,
		orderService.New,

		wire.Bind(new(orderRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier orderRepo.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideListStatus(cfg *config.Config) orderService.ListStatus {
	return orderService.ListStatus(cfg.Orders.ListStatus)
}

func provideOrderStatsInterval(cfg *config.Config) OrderStatsInterval {
	return OrderStatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	log logger.Logger,
	service order_stats.Service,
	interval OrderStatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(log, service, time.Duration(interval))
}

func provideTaskList(
	orderStatsTask *order_stats.OrderStats,
) []background.Task {
	return []background.Task{
		orderStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
