//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_stats_test
package order_stats

import (
	"context"

	"launchpizza/internal/entities"
)

type Service interface {
	OrderStatusStats(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}
