//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	GetUndispatched(ctx context.Context, limit int64) ([]entities.Notification, error)
	MarkDispatched(ctx context.Context, notificationID int64) error
	UndispatchedCount(ctx context.Context) (int64, error)
}
