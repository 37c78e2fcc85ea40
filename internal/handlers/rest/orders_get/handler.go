package orders_get

import (
	"net/http"

	"launchpizza/internal/generated/dto"
	"launchpizza/internal/handlers/rest/response"
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
	orders, err := h.service.ListOrders(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list orders")

		err = response.WriteError(w, http.StatusInternalServerError, response.MsgInternal)
		if err != nil {
			h.log.With(
				logger.NewField("error", err),
			).Error("encode JSON response")
		}
		return
	}

	err = response.WriteJSON(w, http.StatusOK, dto.OrderListResponse{
		Data: response.ToOrderListDTO(orders),
	})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
