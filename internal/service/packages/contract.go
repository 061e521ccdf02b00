//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_test
package packages

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error)
	GetByPackageID(ctx context.Context, packageID string) (*entities.Package, error)
	GetByPackageIDForUpdate(ctx context.Context, packageID string) (*entities.Package, error)
	GetByCustomer(ctx context.Context, customerID int64) ([]entities.Package, error)
	Update(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error)
}

type IdentifierGenerator interface {
	NextPackageID(ctx context.Context) (string, error)
	NextTrackingNumber(ctx context.Context) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
