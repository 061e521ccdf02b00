package notification_backlog

import (
	"context"
	"time"

	"service/pkg/logger"
)

// dispatchBatchSize — сколько уведомлений отправляется за один проход.
const dispatchBatchSize = 100

type Service interface {
	DispatchPending(ctx context.Context, limit int64) (int64, error)
	UndispatchedCount(ctx context.Context) (int64, error)
}

type NotificationBacklog struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewNotificationBacklog(log logger.Logger, service Service, interval time.Duration) *NotificationBacklog {
	return &NotificationBacklog{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (n *NotificationBacklog) TTL() time.Duration {
	return n.interval
}

func (n *NotificationBacklog) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, n.interval)
	defer cancel()

	dispatched, err := n.service.DispatchPending(ctxWithTimeout, dispatchBatchSize)
	if dispatched > 0 {
		n.log.With(
			logger.NewField("dispatched_notifications", dispatched),
		).Info("notification backlog dispatch")
	}
	if err != nil {
		return err
	}

	backlog, err := n.service.UndispatchedCount(ctxWithTimeout)
	if err != nil {
		return err
	}
	UndispatchedNotifications.Set(float64(backlog))

	return nil
}

func (n *NotificationBacklog) Info() string {
	return "notification backlog dispatch"
}
