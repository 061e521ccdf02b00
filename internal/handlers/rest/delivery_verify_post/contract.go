//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_verify_post_test
package delivery_verify_post

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
	VerifyAndDeliver(ctx context.Context, packageRef, suiteEntered, codeEntered string, staffActorID int64) (*entities.VerificationResult, error)
}
