package order_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
		service: service,
		log:     handlerLog,
	}
}

// ServeHTTP отвечает удаленной строкой, чтобы клиент видел последнее состояние заказа.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, response.MsgInvalidOrderID)
		return
	}

	orderEntity, err := h.service.DeleteOrder(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			h.writeError(w, http.StatusNotFound, response.MsgOrderNotFound)
		case errors.Is(err, order.ErrInvalidOrderID):
			h.writeError(w, http.StatusBadRequest, response.MsgInvalidOrderID)
		default:
			h.log.With(
				logger.NewField("error", err),
				logger.NewField("order_id", id),
			).Error("delete order")
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
