package order_events

import (
	"time"

	"github.com/shopspring/decimal"
	"launchpizza/internal/entities"
)

// amount_paid уходит строкой, чтобы потребители не теряли точность NUMERIC.
type orderEventMessage struct {
	EventType  string       `json:"event_type"`
	OccurredAt time.Time    `json:"occurred_at"`
	Order      orderPayload `json:"order"`
}

type orderPayload struct {
	ID           int64           `json:"id"`
	CustomerName string          `json:"customer_name"`
	Item         string          `json:"item"`
	Quantity     int64           `json:"quantity"`
	AmountPaid   decimal.Decimal `json:"amount_paid"`
	OrderStatus  string          `json:"order_status"`
	Date         time.Time       `json:"date"`
}

func toMessage(event entities.OrderEvent) orderEventMessage {
	return orderEventMessage{
		EventType:  event.Type.String(),
		OccurredAt: event.OccurredAt,
		Order: orderPayload{
			ID:           event.Order.ID,
			CustomerName: event.Order.CustomerName,
			Item:         event.Order.Item,
			Quantity:     event.Order.Quantity,
			AmountPaid:   event.Order.AmountPaid,
			OrderStatus:  event.Order.Status.String(),
			Date:         event.Order.Date,
		},
	}
}
