package packages

import (
	"service/internal/entities"
)

func ToDomain(p *PackageDB) *entities.Package {
	if p == nil {
		return nil
	}

	return &entities.Package{
		ID:                  p.ID,
		PackageID:           p.PackageID,
		TrackingNumber:      p.TrackingNumber,
		CustomerID:          p.CustomerID,
		Status:              entities.PackageStatusType(p.Status),
		Description:         p.Description,
		Vendor:              p.Vendor,
		WeightGrams:         p.WeightGrams,
		DeclaredValueCents:  p.DeclaredValueCents,
		ShipmentID:          p.ShipmentID,
		DeliveryAuthCode:    p.DeliveryAuthCode,
		AuthCodeGeneratedAt: p.AuthCodeGeneratedAt,
		AuthCodeUsedAt:      p.AuthCodeUsedAt,
		AuthCodeUsedBy:      p.AuthCodeUsedBy,
		ReceivedAt:          p.ReceivedAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromDomainModify(packageModify *entities.PackageModify) *PackageModifyDB {
	if packageModify == nil {
		return nil
	}
	packageDB := &PackageModifyDB{
		ID:                  packageModify.ID,
		PackageID:           packageModify.PackageID,
		TrackingNumber:      packageModify.TrackingNumber,
		CustomerID:          packageModify.CustomerID,
		Description:         packageModify.Description,
		Vendor:              packageModify.Vendor,
		WeightGrams:         packageModify.WeightGrams,
		DeclaredValueCents:  packageModify.DeclaredValueCents,
		ShipmentID:          packageModify.ShipmentID,
		DeliveryAuthCode:    packageModify.DeliveryAuthCode,
		AuthCodeGeneratedAt: packageModify.AuthCodeGeneratedAt,
		AuthCodeUsedAt:      packageModify.AuthCodeUsedAt,
		AuthCodeUsedBy:      packageModify.AuthCodeUsedBy,
		ReceivedAt:          packageModify.ReceivedAt,
	}

	if packageModify.Status != nil {
		statusType := packageModify.Status.String()
		packageDB.Status = &statusType
	}

	return packageDB
}

func ToDomainList(packagesDB []PackageDB) []entities.Package {
	if len(packagesDB) == 0 {
		return []entities.Package{}
	}

	result := make([]entities.Package, len(packagesDB))
	for i, packageDB := range packagesDB {
		result[i] = *ToDomain(&packageDB)
	}
	return result
}
