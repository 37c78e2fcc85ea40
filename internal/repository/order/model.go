package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID           int64
	CustomerName string
	Item         string
	Quantity     int64
	AmountPaid   decimal.Decimal
	Status       string
	Date         time.Time
}

type OrderModifyDB struct {
	ID           *int64
	CustomerName *string
	Item         *string
	Quantity     *int64
	AmountPaid   *decimal.Decimal
	Status       *string
}

type StatusCountDB struct {
	Status string
	Count  int64
}
