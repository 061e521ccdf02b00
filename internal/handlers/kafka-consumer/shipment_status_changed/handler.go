package shipment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
	shipmentservice "service/internal/service/shipment"
	"service/pkg/logger"
)

// statusChangedEvent — событие перевозчика об изменении статуса отправления.
type statusChangedEvent struct {
	TrackingNumber string `json:"tracking_number"`
	Status         string `json:"status"`
}

type Handler struct {
	shipmentService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, shipmentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		shipmentService:          shipmentService,
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
				// Messages() закрыт — выходим
				h.log.Info("shipment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("shipment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("shipment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("tracking_number", event.TrackingNumber),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("shipment.status.changed processing")

	status := entities.ShipmentStatusType(event.Status)

	shipmentEntity, err := h.shipmentService.AdvanceStatus(ctx, event.TrackingNumber, status)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, shipmentservice.ErrInvalidStatus),
			errors.Is(err, shipmentservice.ErrDeliveredOnlyByReconciliation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler unknown or forbidden status for shipment")

		case errors.Is(err, shipmentservice.ErrInvalidTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler status transition mismatch for shipment")

		case errors.Is(err, shipmentservice.ErrShipmentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler shipment not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("shipment.status.changed handler failed to process shipment")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("tracking_number", shipmentEntity.TrackingNumber),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", shipmentEntity.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("shipment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
