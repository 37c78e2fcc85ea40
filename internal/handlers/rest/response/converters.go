package response

import (
	"launchpizza/internal/entities"
	"launchpizza/internal/generated/dto"
)

func ToOrderDTO(order *entities.Order) dto.Order {
	return dto.Order{
		Id:           order.ID,
		CustomerName: order.CustomerName,
		Item:         order.Item,
		Quantity:     order.Quantity,
		AmountPaid:   order.AmountPaid.InexactFloat64(),
		OrderStatus:  order.Status.String(),
		Date:         order.Date,
	}
}

// ToOrderListDTO никогда не возвращает nil, пустой список кодируется как [].
func ToOrderListDTO(orders []entities.Order) []dto.Order {
	result := make([]dto.Order, 0, len(orders))
	for i := range orders {
		result = append(result, ToOrderDTO(&orders[i]))
	}
	return result
}
