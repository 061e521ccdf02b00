//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_packages_get_test
package shipment_packages_get

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
	GetShipmentPackages(ctx context.Context, trackingNumber string) ([]entities.Package, error)
}
