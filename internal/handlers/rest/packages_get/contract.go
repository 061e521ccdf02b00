//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_get_test
package packages_get

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
	GetPackagesByCustomer(ctx context.Context, customerID int64) ([]entities.Package, error)
}
