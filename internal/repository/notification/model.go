package notification

import "time"

type NotificationDB struct {
	ID           int64
	CustomerID   int64
	Kind         string
	PackageID    int64
	Message      string
	DispatchedAt *time.Time
	CreatedAt    time.Time
}
