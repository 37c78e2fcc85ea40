package app

import (
	"context"
	"fmt"

	"launchpizza/internal/gateway/kafka/order_events"
	"launchpizza/internal/pkg/config"
	"launchpizza/internal/pkg/kafka"
	orderService "launchpizza/internal/service/order"
	"launchpizza/pkg/logger"
)

type OrderEventPublisher interface {
	orderService.EventPublisher
	Close() error
}

// NewOrderEventPublisher при выключенной Kafka возвращает Noop, сервис работает без событий.
func NewOrderEventPublisher(ctx context.Context, log logger.Logger, cfg *config.Kafka) (OrderEventPublisher, error) {
	if !cfg.Enabled {
		log.Info("Kafka disabled, order events are not published")
		return order_events.NewNoop(), nil
	}

	producer, err := kafka.NewSyncProducer(ctx, log, cfg)
	if err != nil {
		return nil, fmt.Errorf("order events producer: %w", err)
	}

	return order_events.New(producer, cfg.EventsTopic), nil
}
