package order

import (
	"context"
	"fmt"
	"time"

	"launchpizza/internal/entities"
	"launchpizza/pkg/logger"
)

// ListStatus статус, по которому фильтруется список заказов.
type ListStatus entities.OrderStatusType

type Service struct {
	repository Repository
	publisher  EventPublisher
	log        logger.Logger
	listStatus entities.OrderStatusType
	now        func() time.Time
}

func New(repository Repository, publisher EventPublisher, log logger.Logger, listStatus ListStatus) *Service {
	return &Service{
		repository: repository,
		publisher:  publisher,
		log:        log,
		listStatus: entities.OrderStatusType(listStatus),
		now:        time.Now,
	}
}

func (s *Service) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.CustomerName == nil ||
		orderModify.Item == nil ||
		orderModify.Quantity == nil ||
		orderModify.AmountPaid == nil ||
		orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}

	// id и дату выставляет база
	orderModify.ID = nil

	order, err := s.repository.Create(ctx, orderModify)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	s.publish(ctx, entities.OrderEventCreated, order)
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAllByStatus(ctx, s.listStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

// UpdateOrderStatus применяет только ID и Status, остальные поля OrderModify игнорируются.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil || *orderModify.Status == "" {
		return nil, ErrMissingRequiredFields
	}
	if *orderModify.ID <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.UpdateStatus(ctx, *orderModify.ID, *orderModify.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.publish(ctx, entities.OrderEventStatusChanged, order)
	return order, nil
}

func (s *Service) DeleteOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete order: %w", err)
	}

	s.publish(ctx, entities.OrderEventDeleted, order)
	return order, nil
}

func (s *Service) OrderStatusStats(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	stats, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders by status: %w", err)
	}

	return stats, nil
}

// publish не влияет на результат запроса: заказ уже сохранен, ошибка только логируется.
func (s *Service) publish(ctx context.Context, eventType entities.OrderEventType, order *entities.Order) {
	err := s.publisher.Publish(ctx, entities.OrderEvent{
		Type:       eventType,
		Order:      *order,
		OccurredAt: s.now().UTC(),
	})
	if err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("event", eventType.String()),
			logger.NewField("order_id", order.ID),
		).Warn("publish order event failed")
	}
}
