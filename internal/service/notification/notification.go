package notification

import (
	"context"
	"errors"
	"fmt"
)

var ErrInvalidLimit = errors.New("invalid limit")

type Notification struct {
	repository Repository
}

func New(repository Repository) *Notification {
	return &Notification{repository: repository}
}

func (s *Notification) UndispatchedCount(ctx context.Context) (int64, error) {
	count, err := s.repository.UndispatchedCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count undispatched notifications: %w", err)
	}

	return count, nil
}

// DispatchPending помечает порцию накопившихся уведомлений
// отправленными и возвращает число обработанных. Фактическая доставка
// делегируется внешнему каналу, здесь только выгребание очереди.
func (s *Notification) DispatchPending(ctx context.Context, limit int64) (int64, error) {
	if limit <= 0 {
		return 0, ErrInvalidLimit
	}

	pending, err := s.repository.GetUndispatched(ctx, limit)
	if err != nil {
		return 0, fmt.Errorf("get undispatched notifications: %w", err)
	}

	var dispatched int64
	for _, notificationEntity := range pending {
		if err := s.repository.MarkDispatched(ctx, notificationEntity.ID); err != nil {
			return dispatched, fmt.Errorf("mark notification %d dispatched: %w", notificationEntity.ID, err)
		}
		dispatched++
	}

	return dispatched, nil
}
