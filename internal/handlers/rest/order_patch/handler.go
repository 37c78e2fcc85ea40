package order_patch

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

// ServeHTTP меняет только order_status; прочие поля тела допускаются, но не применяются.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, response.MsgInvalidOrderID)
		return
	}

	var orderUpdateDTO dto.OrderUpdate
	err = json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, response.MsgInvalidBody)
		return
	}

	orderModifyEntity := entities.OrderModify{
		ID: &id,
	}
	if orderUpdateDTO.OrderStatus != nil {
		status := entities.OrderStatusType(*orderUpdateDTO.OrderStatus)
		orderModifyEntity.Status = &status
	}

	orderEntity, err := h.service.UpdateOrderStatus(r.Context(), orderModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			h.writeError(w, http.StatusBadRequest, response.MsgMissingFields)
		case errors.Is(err, order.ErrInvalidOrderID):
			h.writeError(w, http.StatusBadRequest, response.MsgInvalidOrderID)
		case errors.Is(err, order.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, response.MsgOrderNotFound)
		case errors.Is(err, order.ErrConstraintViolation):
			h.writeError(w, http.StatusUnprocessableEntity, response.MsgConstraintFailed)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", id),
			).Error("update order status")
			h.writeError(w, http.StatusInternalServerError, response.MsgInternal)
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, dto.OrderResponse{
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
