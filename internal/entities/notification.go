package entities

import "time"

type Notification struct {
	ID           int64
	CustomerID   int64
	Kind         NotificationKindType
	PackageID    int64
	Message      string
	DispatchedAt *time.Time
	CreatedAt    time.Time
}

type NotificationKindType string

const NotificationPackageDelivered NotificationKindType = "package_delivered"

func (k NotificationKindType) String() string {
	return string(k)
}

type NotificationModify struct {
	ID         *int64
	CustomerID *int64
	Kind       *NotificationKindType
	PackageID  *int64
	Message    *string
}
