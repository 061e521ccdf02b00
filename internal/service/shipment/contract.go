//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)
	Update(ctx context.Context, shipmentModifyEntity entities.ShipmentModify) (*entities.Shipment, error)

	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
	GetByTrackingNumberForUpdate(ctx context.Context, trackingNumber string) (*entities.Shipment, error)
	GetByIDForUpdate(ctx context.Context, shipmentID int64) (*entities.Shipment, error)

	MemberStatuses(ctx context.Context, shipmentID int64) ([]entities.PackageStatusType, error)
	MemberPackages(ctx context.Context, shipmentID int64) ([]entities.Package, error)
}

type PackageProvider interface {
	GetPackage(ctx context.Context, packageID string) (*entities.Package, error)
}

type Linker interface {
	Link(ctx context.Context, packageID string, shipmentID int64) error
}

type EstimatedDeliveryFactory interface {
	CalculateEstimatedDelivery(totalWeightGrams int64, baseTime time.Time) time.Time
}

type IdentifierGenerator interface {
	NextShipmentTrackingNumber(ctx context.Context) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
