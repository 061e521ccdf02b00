package shipment

import "time"

type ShipmentDB struct {
	ID                      int64
	TrackingNumber          string
	CustomerID              int64
	Status                  string
	TotalWeightGrams        int64
	TotalDeclaredValueCents int64
	EstimatedDelivery       *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type ShipmentModifyDB struct {
	ID                      *int64
	TrackingNumber          *string
	CustomerID              *int64
	Status                  *string
	TotalWeightGrams        *int64
	TotalDeclaredValueCents *int64
	EstimatedDelivery       *time.Time
}

type MemberPackageDB struct {
	ID                 int64
	PackageID          string
	TrackingNumber     string
	CustomerID         int64
	Status             string
	Description        string
	Vendor             string
	WeightGrams        int64
	DeclaredValueCents int64
	ReceivedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
