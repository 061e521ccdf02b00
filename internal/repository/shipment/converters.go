package shipment

import (
	"service/internal/entities"
)

func ToDomain(s *ShipmentDB) *entities.Shipment {
	if s == nil {
		return nil
	}

	return &entities.Shipment{
		ID:                      s.ID,
		TrackingNumber:          s.TrackingNumber,
		CustomerID:              s.CustomerID,
		Status:                  entities.ShipmentStatusType(s.Status),
		TotalWeightGrams:        s.TotalWeightGrams,
		TotalDeclaredValueCents: s.TotalDeclaredValueCents,
		EstimatedDelivery:       s.EstimatedDelivery,
		CreatedAt:               s.CreatedAt,
		UpdatedAt:               s.UpdatedAt,
	}
}

func FromDomainModify(shipmentModify *entities.ShipmentModify) *ShipmentModifyDB {
	if shipmentModify == nil {
		return nil
	}
	shipmentDB := &ShipmentModifyDB{
		ID:                      shipmentModify.ID,
		TrackingNumber:          shipmentModify.TrackingNumber,
		CustomerID:              shipmentModify.CustomerID,
		TotalWeightGrams:        shipmentModify.TotalWeightGrams,
		TotalDeclaredValueCents: shipmentModify.TotalDeclaredValueCents,
		EstimatedDelivery:       shipmentModify.EstimatedDelivery,
	}

	if shipmentModify.Status != nil {
		statusType := shipmentModify.Status.String()
		shipmentDB.Status = &statusType
	}

	return shipmentDB
}

func MemberToDomain(p *MemberPackageDB) *entities.Package {
	if p == nil {
		return nil
	}

	return &entities.Package{
		ID:                 p.ID,
		PackageID:          p.PackageID,
		TrackingNumber:     p.TrackingNumber,
		CustomerID:         p.CustomerID,
		Status:             entities.PackageStatusType(p.Status),
		Description:        p.Description,
		Vendor:             p.Vendor,
		WeightGrams:        p.WeightGrams,
		DeclaredValueCents: p.DeclaredValueCents,
		ReceivedAt:         p.ReceivedAt,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func MemberToDomainList(membersDB []MemberPackageDB) []entities.Package {
	if len(membersDB) == 0 {
		return []entities.Package{}
	}

	result := make([]entities.Package, len(membersDB))
	for i, memberDB := range membersDB {
		result[i] = *MemberToDomain(&memberDB)
	}
	return result
}
