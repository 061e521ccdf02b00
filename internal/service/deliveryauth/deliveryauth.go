package deliveryauth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"service/internal/entities"
)

// Причины отказа верификации в порядке проверки. Клиенту возвращается
// только первая несработавшая проверка, хотя вычисляются все.
const (
	ReasonSuiteMismatch     = "Suite number does not match"
	ReasonNoCodeIssued      = "No delivery code issued"
	ReasonCodeMismatch      = "Invalid delivery code"
	ReasonCodeAlreadyUsed   = "Delivery code already used"
	ReasonNotReadyForPickup = "Package is not available for pickup"
)

type DeliveryAuth struct {
	packages        PackageRepository
	customers       CustomerRepository
	staff           StaffRepository
	verificationLog VerificationLog
	notifications   NotificationRepository
	shipmentService ShipmentService
	txManager       TxManager
}

func New(
	packages PackageRepository,
	customers CustomerRepository,
	staff StaffRepository,
	verificationLog VerificationLog,
	notifications NotificationRepository,
	shipmentService ShipmentService,
	txManager TxManager,
) *DeliveryAuth {
	return &DeliveryAuth{
		packages:        packages,
		customers:       customers,
		staff:           staff,
		verificationLog: verificationLog,
		notifications:   notifications,
		shipmentService: shipmentService,
		txManager:       txManager,
	}
}

// VerifyAndDeliver проводит протокол выдачи посылки на стойке: сверяет
// suite-номер и одноразовый код, пишет ровно одну запись аудита на
// каждую попытку и при успехе атомарно выдает посылку. Отказ проверки —
// не ошибка: он возвращается в VerificationResult, а запись аудита
// фиксируется вместе с ним.
func (s *DeliveryAuth) VerifyAndDeliver(
	ctx context.Context,
	packageRef string,
	suiteEntered string,
	codeEntered string,
	staffActorID int64,
) (*entities.VerificationResult, error) {
	if strings.TrimSpace(packageRef) == "" {
		return nil, ErrInvalidPackageID
	}
	if staffActorID <= 0 {
		return nil, ErrInvalidActorID
	}

	var result *entities.VerificationResult
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		packageEntity, err := s.packages.GetByPackageIDForUpdate(ctx, packageRef)
		if err != nil {
			return fmt.Errorf("get package for update: %w", err)
		}

		staffEntity, err := s.staff.GetByID(ctx, staffActorID)
		if err != nil {
			return fmt.Errorf("get staff: %w", err)
		}

		customerEntity, err := s.customers.GetByID(ctx, packageEntity.CustomerID)
		if err != nil {
			return fmt.Errorf("get customer: %w", err)
		}

		failureReason := evaluateChecks(packageEntity, customerEntity, suiteEntered, codeEntered)

		logEntry := entities.VerificationLogEntry{
			PackageID:    packageEntity.ID,
			StaffID:      staffEntity.ID,
			SuiteEntered: suiteEntered,
			CodeEntered:  codeEntered,
			Verified:     failureReason == "",
		}
		if failureReason != "" {
			logEntry.FailureReason = &failureReason
		}
		if _, err := s.verificationLog.Append(ctx, logEntry); err != nil {
			return fmt.Errorf("append verification log: %w", err)
		}

		if failureReason != "" {
			verificationsTotal.WithLabelValues("failure").Inc()
			result = &entities.VerificationResult{
				Verified:      false,
				FailureReason: failureReason,
			}
			return nil
		}

		usedAt := time.Now().UTC()
		deliveredStatus := entities.PackageDelivered
		updated, err := s.packages.Update(ctx, entities.PackageModify{
			ID:             &packageEntity.ID,
			Status:         &deliveredStatus,
			AuthCodeUsedAt: &usedAt,
			AuthCodeUsedBy: &staffEntity.ID,
		})
		if err != nil {
			return fmt.Errorf("update package: %w", err)
		}

		shipmentDelivered := false
		if packageEntity.ShipmentID != nil {
			shipmentDelivered, err = s.shipmentService.ReconcileCompletion(ctx, *packageEntity.ShipmentID)
			if err != nil {
				return fmt.Errorf("reconcile shipment completion: %w", err)
			}
		}

		kind := entities.NotificationPackageDelivered
		message := fmt.Sprintf("Package %s has been delivered", packageEntity.PackageID)
		if _, err := s.notifications.Create(ctx, entities.NotificationModify{
			CustomerID: &packageEntity.CustomerID,
			Kind:       &kind,
			PackageID:  &packageEntity.ID,
			Message:    &message,
		}); err != nil {
			return fmt.Errorf("create notification: %w", err)
		}

		verificationsTotal.WithLabelValues("success").Inc()
		result = &entities.VerificationResult{
			Verified:          true,
			Package:           updated,
			ShipmentDelivered: shipmentDelivered,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// evaluateChecks вычисляет все пять проверок без короткого замыкания
// и возвращает причину первой несработавшей, либо пустую строку.
func evaluateChecks(
	packageEntity *entities.Package,
	customerEntity *entities.Customer,
	suiteEntered string,
	codeEntered string,
) string {
	suiteMatches := customerEntity.SuiteNumber != nil &&
		normalizeSuite(suiteEntered) == normalizeSuite(*customerEntity.SuiteNumber)

	codeExists := packageEntity.DeliveryAuthCode != nil

	codeMatches := codeExists &&
		strings.TrimSpace(codeEntered) == *packageEntity.DeliveryAuthCode

	codeUnused := packageEntity.AuthCodeUsedAt == nil

	statusArrived := packageEntity.Status == entities.PackageArrived

	switch {
	case !suiteMatches:
		return ReasonSuiteMismatch
	case !codeExists:
		return ReasonNoCodeIssued
	case !codeMatches:
		return ReasonCodeMismatch
	case !codeUnused:
		return ReasonCodeAlreadyUsed
	case !statusArrived:
		return ReasonNotReadyForPickup
	default:
		return ""
	}
}

func normalizeSuite(suite string) string {
	return strings.ToUpper(strings.TrimSpace(suite))
}
