package consolidation

import "time"

type PackageLinkStateDB struct {
	ID         int64
	PackageID  string
	CustomerID int64
	Status     string
	ShipmentID *int64
}

type PackageShipmentLinkDB struct {
	ID         int64
	PackageID  int64
	ShipmentID int64
	LinkedAt   time.Time
}
