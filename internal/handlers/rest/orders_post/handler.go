package orders_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"launchpizza/internal/entities"
	"launchpizza/internal/generated/dto"
	"launchpizza/internal/handlers/rest/response"
	"launchpizza/internal/service/order"
	"launchpizza/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	orderModifyEntity := toOrderModify(orderCreateDTO)

	orderEntity, err := h.service.CreateOrder(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			h.writeError(w, http.StatusBadRequest, response.MsgMissingFields)
		case errors.Is(err, order.ErrConstraintViolation):
			h.writeError(w, http.StatusUnprocessableEntity, response.MsgConstraintFailed)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create order")
			h.writeError(w, http.StatusInternalServerError, response.MsgInternal)
		}
		return
	}

	err = response.WriteJSON(w, http.StatusCreated, dto.OrderResponse{
		Data: response.ToOrderDTO(orderEntity),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	err := response.WriteError(w, status, message)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toOrderModify(orderCreateDTO dto.OrderCreate) entities.OrderModify {
	orderModifyEntity := entities.OrderModify{
		CustomerName: orderCreateDTO.CustomerName,
		Item:         orderCreateDTO.Item,
		Quantity:     orderCreateDTO.Quantity,
	}
	if orderCreateDTO.AmountPaid != nil {
		amountPaid := decimal.NewFromFloat(*orderCreateDTO.AmountPaid)
		orderModifyEntity.AmountPaid = &amountPaid
	}
	if orderCreateDTO.OrderStatus != nil {
		status := entities.OrderStatusType(*orderCreateDTO.OrderStatus)
		orderModifyEntity.Status = &status
	}
	return orderModifyEntity
}
