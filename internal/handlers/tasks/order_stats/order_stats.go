package order_stats

import (
	"context"
	"fmt"
	"time"

	"launchpizza/internal/pkg/metrics"
	"launchpizza/pkg/logger"
)

type OrderStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderStats(log logger.Logger, service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

// Do пересчитывает заказы по статусам и выставляет gauge orders_by_status.
func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	stats, err := o.service.OrderStatusStats(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("order stats: %w", err)
	}

	metrics.SetOrdersByStatus(stats)

	var total int64
	for _, count := range stats {
		total += count
	}
	o.log.With(
		logger.NewField("statuses", len(stats)),
		logger.NewField("orders", total),
	).Info("order stats refreshed")

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}
