//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryauth_test
package deliveryauth

import (
	"context"

	"service/internal/entities"
)

type PackageRepository interface {
	GetByPackageIDForUpdate(ctx context.Context, packageID string) (*entities.Package, error)
	Update(ctx context.Context, packageModifyEntity entities.PackageModify) (*entities.Package, error)
}

type CustomerRepository interface {
	GetByID(ctx context.Context, customerID int64) (*entities.Customer, error)
}

type StaffRepository interface {
	GetByID(ctx context.Context, staffID int64) (*entities.Staff, error)
}

type VerificationLog interface {
	Append(ctx context.Context, entry entities.VerificationLogEntry) (*entities.VerificationLogEntry, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, notificationModifyEntity entities.NotificationModify) (*entities.Notification, error)
}

type ShipmentService interface {
	ReconcileCompletion(ctx context.Context, shipmentID int64) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
