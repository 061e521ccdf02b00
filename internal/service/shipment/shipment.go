package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"service/internal/entities"
	"service/internal/service/identifier"
)

// maxIdentifierAttempts — сколько раз создание отправления повторяется
// после нарушения уникальности на сгенерированном трек-номере.
const maxIdentifierAttempts = 3

type Shipment struct {
	repository      Repository
	packageProvider PackageProvider
	linker          Linker
	etaFactory      EstimatedDeliveryFactory
	identifiers     IdentifierGenerator
	txManager       TxManager
}

func New(
	repository Repository,
	packageProvider PackageProvider,
	linker Linker,
	etaFactory EstimatedDeliveryFactory,
	identifiers IdentifierGenerator,
	txManager TxManager,
) *Shipment {
	return &Shipment{
		repository:      repository,
		packageProvider: packageProvider,
		linker:          linker,
		etaFactory:      etaFactory,
		identifiers:     identifiers,
		txManager:       txManager,
	}
}

// CreateShipment собирает отправление из посылок одного клиента:
// агрегирует вес и заявленную стоимость, выделяет трек-номер и
// привязывает каждую посылку к созданному отправлению.
func (s *Shipment) CreateShipment(ctx context.Context, packageIDs []string) (*entities.Shipment, error) {
	if len(packageIDs) == 0 {
		return nil, ErrNoPackages
	}

	var created *entities.Shipment
	for attempt := 0; attempt < maxIdentifierAttempts; attempt++ {
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			memberPackages := make([]entities.Package, 0, len(packageIDs))
			var customerID int64
			var totalWeightGrams, totalDeclaredValueCents int64

			for _, packageID := range packageIDs {
				packageEntity, err := s.packageProvider.GetPackage(ctx, packageID)
				if err != nil {
					return fmt.Errorf("get package %q: %w", packageID, err)
				}

				if customerID == 0 {
					customerID = packageEntity.CustomerID
				} else if packageEntity.CustomerID != customerID {
					return ErrMixedOwners
				}

				totalWeightGrams += packageEntity.WeightGrams
				totalDeclaredValueCents += packageEntity.DeclaredValueCents
				memberPackages = append(memberPackages, *packageEntity)
			}

			trackingNumber, err := s.identifiers.NextShipmentTrackingNumber(ctx)
			if err != nil {
				return fmt.Errorf("next shipment tracking number: %w", err)
			}

			status := entities.ShipmentPending
			estimatedDelivery := s.etaFactory.CalculateEstimatedDelivery(totalWeightGrams, time.Now().UTC())

			shipmentEntity, err := s.repository.Create(ctx, entities.ShipmentModify{
				TrackingNumber:          &trackingNumber,
				CustomerID:              &customerID,
				Status:                  &status,
				TotalWeightGrams:        &totalWeightGrams,
				TotalDeclaredValueCents: &totalDeclaredValueCents,
				EstimatedDelivery:       &estimatedDelivery,
			})
			if err != nil {
				return fmt.Errorf("create shipment: %w", err)
			}

			for _, memberPackage := range memberPackages {
				if err := s.linker.Link(ctx, memberPackage.PackageID, shipmentEntity.ID); err != nil {
					return fmt.Errorf("link package %q: %w", memberPackage.PackageID, err)
				}
			}

			created = shipmentEntity
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrConflict) {
				identifier.InsertRetriesTotal.WithLabelValues("shipment").Inc()
				continue
			}
			return nil, err
		}
		return created, nil
	}

	return nil, fmt.Errorf("identifier attempts exhausted: %w", ErrConflict)
}

func (s *Shipment) GetShipment(ctx context.Context, trackingNumber string) (*entities.Shipment, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	shipmentEntity, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	return shipmentEntity, nil
}

func (s *Shipment) GetShipmentPackages(ctx context.Context, trackingNumber string) ([]entities.Package, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}

	shipmentEntity, err := s.repository.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment: %w", err)
	}

	memberPackages, err := s.repository.MemberPackages(ctx, shipmentEntity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shipment packages: %w", err)
	}

	return memberPackages, nil
}

// AdvanceStatus двигает отправление строго на непосредственного
// преемника текущего статуса. Статус delivered выставляет только
// сверка завершения.
func (s *Shipment) AdvanceStatus(ctx context.Context, trackingNumber string, newStatus entities.ShipmentStatusType) (*entities.Shipment, error) {
	if !isValidTrackingNumber(trackingNumber) {
		return nil, ErrInvalidTrackingNumber
	}
	if !isValidStatus(newStatus.String()) {
		return nil, ErrInvalidStatus
	}
	if newStatus == entities.ShipmentDelivered {
		return nil, ErrDeliveredOnlyByReconciliation
	}

	var result *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByTrackingNumberForUpdate(ctx, trackingNumber)
		if err != nil {
			return fmt.Errorf("get shipment for update: %w", err)
		}

		next, ok := shipmentEntity.Status.Next()
		if !ok || next != newStatus {
			return ErrInvalidTransition
		}

		updated, err := s.repository.Update(ctx, entities.ShipmentModify{
			ID:     &shipmentEntity.ID,
			Status: &newStatus,
		})
		if err != nil {
			return fmt.Errorf("update shipment: %w", err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ReconcileCompletion переводит отправление в delivered, когда все его
// посылки уже выданы. Возвращает true только при фактическом переходе,
// повторные вызовы идемпотентны.
func (s *Shipment) ReconcileCompletion(ctx context.Context, shipmentID int64) (bool, error) {
	if shipmentID <= 0 {
		return false, ErrInvalidShipmentID
	}

	var transitioned bool
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipmentEntity, err := s.repository.GetByIDForUpdate(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment for update: %w", err)
		}

		if shipmentEntity.Status == entities.ShipmentDelivered {
			return nil
		}

		memberStatuses, err := s.repository.MemberStatuses(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get member statuses: %w", err)
		}
		if len(memberStatuses) == 0 {
			return nil
		}

		for _, memberStatus := range memberStatuses {
			if memberStatus != entities.PackageDelivered {
				return nil
			}
		}

		deliveredStatus := entities.ShipmentDelivered
		_, err = s.repository.Update(ctx, entities.ShipmentModify{
			ID:     &shipmentEntity.ID,
			Status: &deliveredStatus,
		})
		if err != nil {
			return fmt.Errorf("update shipment: %w", err)
		}

		transitioned = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return transitioned, nil
}
