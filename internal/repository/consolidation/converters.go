package consolidation

import (
	"service/internal/entities"
)

func ToDomainPackage(p *PackageLinkStateDB) *entities.Package {
	if p == nil {
		return nil
	}

	return &entities.Package{
		ID:         p.ID,
		PackageID:  p.PackageID,
		CustomerID: p.CustomerID,
		Status:     entities.PackageStatusType(p.Status),
		ShipmentID: p.ShipmentID,
	}
}

func ToDomainLink(l *PackageShipmentLinkDB) *entities.PackageShipmentLink {
	if l == nil {
		return nil
	}

	return &entities.PackageShipmentLink{
		ID:         l.ID,
		PackageID:  l.PackageID,
		ShipmentID: l.ShipmentID,
		LinkedAt:   l.LinkedAt,
	}
}
