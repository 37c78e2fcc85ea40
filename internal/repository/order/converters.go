package order

import (
	"launchpizza/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:           o.ID,
		CustomerName: o.CustomerName,
		Item:         o.Item,
		Quantity:     o.Quantity,
		AmountPaid:   o.AmountPaid,
		Status:       entities.OrderStatusType(o.Status),
		Date:         o.Date,
	}
}

func FromDomainModify(orderModify *entities.OrderModify) *OrderModifyDB {
	if orderModify == nil {
		return nil
	}

	orderDB := &OrderModifyDB{
		ID:           orderModify.ID,
		CustomerName: orderModify.CustomerName,
		Item:         orderModify.Item,
		Quantity:     orderModify.Quantity,
		AmountPaid:   orderModify.AmountPaid,
	}
	if orderModify.Status != nil {
		status := orderModify.Status.String()
		orderDB.Status = &status
	}

	return orderDB
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i := range ordersDB {
		result[i] = *ToDomain(&ordersDB[i])
	}
	return result
}

func ToStatusCounts(countsDB []StatusCountDB) map[entities.OrderStatusType]int64 {
	result := make(map[entities.OrderStatusType]int64, len(countsDB))
	for _, c := range countsDB {
		result[entities.OrderStatusType(c.Status)] = c.Count
	}
	return result
}
