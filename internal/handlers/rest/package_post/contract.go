//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_post_test
package package_post

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
	CreatePackage(ctx context.Context, packageModify entities.PackageModify) (*entities.Package, error)
}
