package notification

import (
	"service/internal/entities"
)

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}

	return &entities.Notification{
		ID:           n.ID,
		CustomerID:   n.CustomerID,
		Kind:         entities.NotificationKindType(n.Kind),
		PackageID:    n.PackageID,
		Message:      n.Message,
		DispatchedAt: n.DispatchedAt,
		CreatedAt:    n.CreatedAt,
	}
}

func ToDomainList(notificationsDB []NotificationDB) []entities.Notification {
	if len(notificationsDB) == 0 {
		return []entities.Notification{}
	}

	result := make([]entities.Notification, len(notificationsDB))
	for i, notificationDB := range notificationsDB {
		result[i] = *ToDomain(&notificationDB)
	}
	return result
}
