//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_put_test
package shipment_status_put

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AdvanceStatus(ctx context.Context, trackingNumber string, newStatus entities.ShipmentStatusType) (*entities.Shipment, error)
}
