package shipment

import "errors"

var (
	ErrNoPackages            = errors.New("shipment requires at least one package")
	ErrMixedOwners           = errors.New("packages belong to different customers")
	ErrInvalidTrackingNumber = errors.New("invalid tracking number")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")

	ErrShipmentNotFound              = errors.New("shipment not found")
	ErrInvalidTransition             = errors.New("invalid status transition")
	ErrDeliveredOnlyByReconciliation = errors.New("delivered status is set only by completion reconciliation")
	ErrConflict                      = errors.New("resource already exists")
)
