package packages

import "time"

type PackageDB struct {
	ID                  int64
	PackageID           string
	TrackingNumber      string
	CustomerID          int64
	Status              string
	Description         string
	Vendor              string
	WeightGrams         int64
	DeclaredValueCents  int64
	ShipmentID          *int64
	DeliveryAuthCode    *string
	AuthCodeGeneratedAt *time.Time
	AuthCodeUsedAt      *time.Time
	AuthCodeUsedBy      *int64
	ReceivedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type PackageModifyDB struct {
	ID                  *int64
	PackageID           *string
	TrackingNumber      *string
	CustomerID          *int64
	Status              *string
	Description         *string
	Vendor              *string
	WeightGrams         *int64
	DeclaredValueCents  *int64
	ShipmentID          *int64
	DeliveryAuthCode    *string
	AuthCodeGeneratedAt *time.Time
	AuthCodeUsedAt      *time.Time
	AuthCodeUsedBy      *int64
	ReceivedAt          *time.Time
}
