package consolidation

import (
	"context"
	"fmt"
	"strings"
)

type Consolidation struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Consolidation {
	return &Consolidation{
		repository: repository,
		txManager:  txManager,
	}
}

// Link привязывает посылку к отправлению. Привязка к другому отправлению
// запрещена, повторная привязка к тому же отправлению — идемпотентный
// no-op. Факт включения дублируется в исторической таблице связей.
func (s *Consolidation) Link(ctx context.Context, packageID string, shipmentID int64) error {
	if strings.TrimSpace(packageID) == "" {
		return ErrInvalidPackageID
	}
	if shipmentID <= 0 {
		return ErrInvalidShipmentID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		packageEntity, err := s.repository.GetPackageByPackageIDForUpdate(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get package for update: %w", err)
		}

		if packageEntity.ShipmentID != nil {
			if *packageEntity.ShipmentID == shipmentID {
				return nil
			}
			return ErrPackageAlreadyLinked
		}

		if _, err := s.repository.InsertLink(ctx, packageEntity.ID, shipmentID); err != nil {
			return fmt.Errorf("insert link: %w", err)
		}

		if err := s.repository.SetPackageShipment(ctx, packageEntity.ID, shipmentID); err != nil {
			return fmt.Errorf("set package shipment: %w", err)
		}

		return nil
	})
}
