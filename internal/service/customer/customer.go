package customer

import (
	"context"
	"errors"
	"fmt"

	"service/internal/entities"
	"service/internal/service/identifier"
)

// maxIdentifierAttempts — сколько раз назначение suite-номера
// повторяется после нарушения уникальности.
const maxIdentifierAttempts = 3

type Customer struct {
	repository  Repository
	identifiers IdentifierGenerator
	txManager   TxManager
}

func New(repository Repository, identifiers IdentifierGenerator, txManager TxManager) *Customer {
	return &Customer{
		repository:  repository,
		identifiers: identifiers,
		txManager:   txManager,
	}
}

func (s *Customer) CreateCustomer(ctx context.Context, customerModify entities.CustomerModify) (*entities.Customer, error) {
	if customerModify.Name == nil || customerModify.Email == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(*customerModify.Email) {
		return nil, ErrInvalidEmail
	}

	customerEntity, err := s.repository.Create(ctx, customerModify)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return customerEntity, nil
}

func (s *Customer) GetCustomer(ctx context.Context, customerID int64) (*entities.Customer, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}

	customerEntity, err := s.repository.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customerEntity, nil
}

// AssignSuite выделяет клиенту персональный suite-номер. Уже
// назначенный номер возвращается как есть, повторного выделения нет.
func (s *Customer) AssignSuite(ctx context.Context, customerID int64) (*entities.Customer, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}

	var result *entities.Customer
	for attempt := 0; attempt < maxIdentifierAttempts; attempt++ {
		err := s.txManager.Do(ctx, func(ctx context.Context) error {
			customerEntity, err := s.repository.GetByIDForUpdate(ctx, customerID)
			if err != nil {
				return fmt.Errorf("get customer for update: %w", err)
			}

			if customerEntity.SuiteNumber != nil {
				result = customerEntity
				return nil
			}

			suiteNumber, err := s.identifiers.NextSuiteNumber(ctx)
			if err != nil {
				return fmt.Errorf("next suite number: %w", err)
			}

			updated, err := s.repository.Update(ctx, entities.CustomerModify{
				ID:          &customerEntity.ID,
				SuiteNumber: &suiteNumber,
			})
			if err != nil {
				return fmt.Errorf("update customer: %w", err)
			}

			result = updated
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrConflict) {
				identifier.InsertRetriesTotal.WithLabelValues("suite").Inc()
				continue
			}
			return nil, err
		}
		return result, nil
	}

	return nil, fmt.Errorf("identifier attempts exhausted: %w", ErrConflict)
}
