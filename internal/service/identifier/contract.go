//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=identifier_test
package identifier

import "context"

type Repository interface {
	MaxSuiteSequence(ctx context.Context) (int, error)
	SuiteNumberExists(ctx context.Context, suiteNumber string) (bool, error)

	MaxPackageSequence(ctx context.Context, year int) (int, error)
	PackageIDExists(ctx context.Context, packageID string) (bool, error)

	MaxTrackingSequence(ctx context.Context, year int) (int, error)
	TrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)

	MaxShipmentTrackingSequence(ctx context.Context, year int) (int, error)
	ShipmentTrackingNumberExists(ctx context.Context, trackingNumber string) (bool, error)
}
