package entities

import "time"

type Shipment struct {
	ID                      int64
	TrackingNumber          string
	CustomerID              int64
	Status                  ShipmentStatusType
	TotalWeightGrams        int64
	TotalDeclaredValueCents int64
	EstimatedDelivery       *time.Time
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

type ShipmentStatusType string

const (
	ShipmentPending    ShipmentStatusType = "pending"
	ShipmentProcessing ShipmentStatusType = "processing"
	ShipmentShipped    ShipmentStatusType = "shipped"
	ShipmentInTransit  ShipmentStatusType = "in_transit"
	ShipmentArrived    ShipmentStatusType = "arrived"
	ShipmentDelivered  ShipmentStatusType = "delivered"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

// Next возвращает следующий статус жизненного цикла отправления.
func (s ShipmentStatusType) Next() (ShipmentStatusType, bool) {
	switch s {
	case ShipmentPending:
		return ShipmentProcessing, true
	case ShipmentProcessing:
		return ShipmentShipped, true
	case ShipmentShipped:
		return ShipmentInTransit, true
	case ShipmentInTransit:
		return ShipmentArrived, true
	case ShipmentArrived:
		return ShipmentDelivered, true
	default:
		return "", false
	}
}

type ShipmentModify struct {
	ID                      *int64
	TrackingNumber          *string
	CustomerID              *int64
	Status                  *ShipmentStatusType
	TotalWeightGrams        *int64
	TotalDeclaredValueCents *int64
	EstimatedDelivery       *time.Time
}

// PackageShipmentLink — историческая запись о включении посылки в отправление.
type PackageShipmentLink struct {
	ID         int64
	PackageID  int64
	ShipmentID int64
	LinkedAt   time.Time
}
