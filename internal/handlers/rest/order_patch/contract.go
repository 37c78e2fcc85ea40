//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_patch_test
package order_patch

import (
	"context"

	"launchpizza/internal/entities"
	"launchpizza/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateOrderStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
}
