package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"launchpizza/internal/entities"
	orderservice "launchpizza/internal/service/order"
	"launchpizza/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "order.status.changed"),
	)

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("claim messages closed, exiting ConsumeClaim")
				return nil
			}

			if h.messageProcessing(sess, message) {
				return nil
			}

		case <-sess.Context().Done():
			// ребаланс или остановка consumer group
			h.log.Info("session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать: сообщение не помечено
// и будет прочитано снова после ребаланса или рестарта.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order_id", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	status := entities.OrderStatusType(event.Status)
	order, err := h.orderService.UpdateOrderStatus(ctx, entities.OrderModify{
		ID:     &event.OrderID,
		Status: &status,
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound):
			msgLog.Warn("order not found, message skipped")

		case errors.Is(err, orderservice.ErrMissingRequiredFields),
			errors.Is(err, orderservice.ErrInvalidOrderID),
			errors.Is(err, orderservice.ErrConstraintViolation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("invalid status change, message skipped")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("failed to apply status change")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("current_status", order.Status.String()),
	).Info("status change applied")

	sess.MarkMessage(message, "")
	return false
}
