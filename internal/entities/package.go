package entities

import "time"

type Package struct {
	ID                  int64
	PackageID           string
	TrackingNumber      string
	CustomerID          int64
	Status              PackageStatusType
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

type PackageStatusType string

const (
	PackagePending    PackageStatusType = "pending"
	PackageReceived   PackageStatusType = "received"
	PackageProcessing PackageStatusType = "processing"
	PackageShipped    PackageStatusType = "shipped"
	PackageArrived    PackageStatusType = "arrived"
	PackageDelivered  PackageStatusType = "delivered"
)

func (s PackageStatusType) String() string {
	return string(s)
}

// Next возвращает следующий статус жизненного цикла посылки.
// Для терминального статуса (и неизвестных значений) ok == false.
func (s PackageStatusType) Next() (PackageStatusType, bool) {
	switch s {
	case PackagePending:
		return PackageReceived, true
	case PackageReceived:
		return PackageProcessing, true
	case PackageProcessing:
		return PackageShipped, true
	case PackageShipped:
		return PackageArrived, true
	case PackageArrived:
		return PackageDelivered, true
	default:
		return "", false
	}
}

type PackageModify struct {
	ID                  *int64
	PackageID           *string
	TrackingNumber      *string
	CustomerID          *int64
	Status              *PackageStatusType
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
