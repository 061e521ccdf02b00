package notification

import (
	"context"
	"fmt"

	"service/internal/entities"
)

const notificationColumns = `id, customer_id, kind, package_id, message, dispatched_at, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, notificationModifyEntity entities.NotificationModify) (*entities.Notification, error) {
	query := `INSERT INTO notifications (customer_id, kind, package_id, message)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + notificationColumns

	var kind *string
	if notificationModifyEntity.Kind != nil {
		kindValue := notificationModifyEntity.Kind.String()
		kind = &kindValue
	}

	var notificationModel NotificationDB
	err := r.querier.QueryRow(
		ctx,
		query,
		notificationModifyEntity.CustomerID,
		kind,
		notificationModifyEntity.PackageID,
		notificationModifyEntity.Message,
	).Scan(scanTargets(&notificationModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository create error: %w", err)
	}

	return ToDomain(&notificationModel), nil
}

func (r *Repository) GetUndispatched(ctx context.Context, limit int64) ([]entities.Notification, error) {
	query := `SELECT ` + notificationColumns + `
		FROM notifications
		WHERE dispatched_at IS NULL
		ORDER BY id
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository getundispatched error: %w", err)
	}
	defer rows.Close()

	notificationModels := make([]NotificationDB, 0, 8)
	for rows.Next() {
		var notificationModel NotificationDB
		err := rows.Scan(scanTargets(&notificationModel)...)
		if err != nil {
			return nil, fmt.Errorf("unexpected notification repository getundispatched error: %w", err)
		}
		notificationModels = append(notificationModels, notificationModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected notification repository getundispatched error: %w", err)
	}

	return ToDomainList(notificationModels), nil
}

func (r *Repository) MarkDispatched(ctx context.Context, notificationID int64) error {
	query := `UPDATE notifications
		SET dispatched_at = NOW()
		WHERE id = $1 AND dispatched_at IS NULL`

	_, err := r.querier.Exec(ctx, query, notificationID)
	if err != nil {
		return fmt.Errorf("unexpected notification repository markdispatched error: %w", err)
	}

	return nil
}

func (r *Repository) UndispatchedCount(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*)
		FROM notifications
		WHERE dispatched_at IS NULL`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected notification repository undispatchedcount error: %w", err)
	}

	return count, nil
}

func scanTargets(notificationModel *NotificationDB) []interface{} {
	return []interface{}{
		&notificationModel.ID,
		&notificationModel.CustomerID,
		&notificationModel.Kind,
		&notificationModel.PackageID,
		&notificationModel.Message,
		&notificationModel.DispatchedAt,
		&notificationModel.CreatedAt,
	}
}
