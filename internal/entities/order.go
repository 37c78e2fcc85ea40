package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID           int64
	CustomerName string
	Item         string
	Quantity     int64
	AmountPaid   decimal.Decimal
	Status       OrderStatusType
	Date         time.Time
}

// OrderStatusType не ограничен перечислением: кухня и доставка могут выставлять свои статусы.
type OrderStatusType string

const (
	OrderReceived  OrderStatusType = "Order Received"
	OrderPreparing OrderStatusType = "Preparing"
	OrderDelivered OrderStatusType = "Delivered"
)

const DefaultListStatus = OrderReceived

func (s OrderStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID           *int64
	CustomerName *string
	Item         *string
	Quantity     *int64
	AmountPaid   *decimal.Decimal
	Status       *OrderStatusType
}

type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventStatusChanged OrderEventType = "order.status_changed"
	OrderEventDeleted       OrderEventType = "order.deleted"
)

func (t OrderEventType) String() string {
	return string(t)
}

type OrderEvent struct {
	Type       OrderEventType
	Order      Order
	OccurredAt time.Time
}
