//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=consolidation_test
package consolidation

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	GetPackageByPackageIDForUpdate(ctx context.Context, packageID string) (*entities.Package, error)
	InsertLink(ctx context.Context, packageID int64, shipmentID int64) (*entities.PackageShipmentLink, error)
	SetPackageShipment(ctx context.Context, packageID int64, shipmentID int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
