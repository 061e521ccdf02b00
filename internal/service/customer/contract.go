//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_test
package customer

import (
	"context"

	"service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error)
	Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error)

	GetByID(ctx context.Context, customerID int64) (*entities.Customer, error)
	GetByIDForUpdate(ctx context.Context, customerID int64) (*entities.Customer, error)
}

type IdentifierGenerator interface {
	NextSuiteNumber(ctx context.Context) (string, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
