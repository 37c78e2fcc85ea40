//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"launchpizza/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetAllByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id int64, status entities.OrderStatusType) (*entities.Order, error)
	Delete(ctx context.Context, id int64) (*entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}
