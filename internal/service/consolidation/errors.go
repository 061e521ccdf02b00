package consolidation

import "errors"

var (
	ErrInvalidPackageID  = errors.New("invalid package id")
	ErrInvalidShipmentID = errors.New("invalid shipment id")

	ErrPackageNotFound      = errors.New("package not found")
	ErrPackageAlreadyLinked = errors.New("package already linked to another shipment")
	ErrConflict             = errors.New("resource already exists")
)
