package packages

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"service/internal/entities"
	"service/internal/service/identifier"
)

// maxIdentifierAttempts — сколько раз интейк повторяет вставку после
// нарушения уникальности на сгенерированном идентификаторе. Скан
// "максимум + 1" не атомарен со вставкой, конфликт здесь штатный.
const maxIdentifierAttempts = 3

type Packages struct {
	repository  Repository
	identifiers IdentifierGenerator
	txManager   TxManager
}

func New(repository Repository, identifiers IdentifierGenerator, txManager TxManager) *Packages {
	return &Packages{
		repository:  repository,
		identifiers: identifiers,
		txManager:   txManager,
	}
}

func (s *Packages) CreatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error) {
	if packageModify.CustomerID == nil || packageModify.Description == nil {
		return nil, ErrMissingRequiredFields
	}
	if packageModify.WeightGrams != nil && *packageModify.WeightGrams < 0 {
		return nil, ErrInvalidWeight
	}
	if packageModify.DeclaredValueCents != nil && *packageModify.DeclaredValueCents < 0 {
		return nil, ErrInvalidDeclaredValue
	}

	var created *entities.Package
	for attempt := 0; attempt < maxIdentifierAttempts; attempt++ {
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			packageID, err := s.identifiers.NextPackageID(ctx)
			if err != nil {
				return fmt.Errorf("next package id: %w", err)
			}

			trackingNumber, err := s.identifiers.NextTrackingNumber(ctx)
			if err != nil {
				return fmt.Errorf("next tracking number: %w", err)
			}

			status := entities.PackagePending
			packageModify.PackageID = &packageID
			packageModify.TrackingNumber = &trackingNumber
			packageModify.Status = &status

			created, err = s.repository.Create(ctx, packageModify)
			if err != nil {
				return fmt.Errorf("create package: %w", err)
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrConflict) {
				identifier.InsertRetriesTotal.WithLabelValues("package").Inc()
				continue
			}
			return nil, err
		}
		return created, nil
	}

	return nil, fmt.Errorf("identifier attempts exhausted: %w", ErrConflict)
}

func (s *Packages) GetPackage(ctx context.Context, packageID string) (*entities.Package, error) {
	if !isValidPackageID(packageID) {
		return nil, ErrInvalidPackageID
	}

	packageEntity, err := s.repository.GetByPackageID(ctx, packageID)
	if err != nil {
		return nil, fmt.Errorf("failed to get package: %w", err)
	}

	return packageEntity, nil
}

func (s *Packages) GetPackagesByCustomer(ctx context.Context, customerID int64) ([]entities.Package, error) {
	packageEntities, err := s.repository.GetByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}

	return packageEntities, nil
}

// MarkReceived переводит посылку pending -> received и один раз
// проставляет received_at. Повторный вызов по уже принятой посылке —
// идемпотентный no-op.
func (s *Packages) MarkReceived(ctx context.Context, packageID string) (*entities.Package, error) {
	if !isValidPackageID(packageID) {
		return nil, ErrInvalidPackageID
	}

	var result *entities.Package
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		packageEntity, err := s.repository.GetByPackageIDForUpdate(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get package for update: %w", err)
		}

		if packageEntity.Status == entities.PackageReceived {
			result = packageEntity
			return nil
		}
		if packageEntity.Status != entities.PackagePending {
			return ErrInvalidTransition
		}

		receivedAt := time.Now().UTC()
		newStatus := entities.PackageReceived
		updated, err := s.repository.Update(ctx, entities.PackageModify{
			ID:         &packageEntity.ID,
			Status:     &newStatus,
			ReceivedAt: &receivedAt,
		})
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AdvanceStatus двигает посылку строго на непосредственного преемника
// текущего статуса. Статус delivered выставляет только протокол выдачи.
func (s *Packages) AdvanceStatus(ctx context.Context, packageID string, newStatus entities.PackageStatusType) (*entities.Package, error) {
	if !isValidPackageID(packageID) {
		return nil, ErrInvalidPackageID
	}
	if !isValidStatus(newStatus.String()) {
		return nil, ErrInvalidStatus
	}
	if newStatus == entities.PackageDelivered {
		return nil, ErrDeliveredOnlyByVerification
	}

	var result *entities.Package
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		packageEntity, err := s.repository.GetByPackageIDForUpdate(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get package for update: %w", err)
		}

		next, ok := packageEntity.Status.Next()
		if !ok || next != newStatus {
			return ErrInvalidTransition
		}

		packageModify := entities.PackageModify{
			ID:     &packageEntity.ID,
			Status: &newStatus,
		}
		if newStatus == entities.PackageReceived && packageEntity.ReceivedAt == nil {
			receivedAt := time.Now().UTC()
			packageModify.ReceivedAt = &receivedAt
		}

		updated, err := s.repository.Update(ctx, packageModify)
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}

		result = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// IssueDeliveryCode выдает одноразовый 6-значный код выдачи для
// прибывшей посылки. Пока код не использован, повторный вызов возвращает
// тот же код, а не новый; чтение идет под блокировкой строки.
func (s *Packages) IssueDeliveryCode(ctx context.Context, packageID string) (string, error) {
	if !isValidPackageID(packageID) {
		return "", ErrInvalidPackageID
	}

	var code string
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		packageEntity, err := s.repository.GetByPackageIDForUpdate(ctx, packageID)
		if err != nil {
			return fmt.Errorf("get package for update: %w", err)
		}

		if packageEntity.DeliveryAuthCode != nil && packageEntity.AuthCodeUsedAt == nil {
			code = *packageEntity.DeliveryAuthCode
			return nil
		}

		if packageEntity.Status != entities.PackageArrived {
			return ErrPackageNotArrived
		}

		newCode, err := generateDeliveryCode()
		if err != nil {
			return fmt.Errorf("generate delivery code: %w", err)
		}

		generatedAt := time.Now().UTC()
		_, err = s.repository.Update(ctx, entities.PackageModify{
			ID:                  &packageEntity.ID,
			DeliveryAuthCode:    &newCode,
			AuthCodeGeneratedAt: &generatedAt,
		})
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}

		code = newCode
		return nil
	})
	if err != nil {
		return "", err
	}
	return code, nil
}

// generateDeliveryCode возвращает равномерно распределенный код
// из диапазона 100000..999999.
func generateDeliveryCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
