package customer

import (
	"service/internal/entities"
)

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	return &entities.Customer{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		SuiteNumber: c.SuiteNumber,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromDomainModify(customerModify *entities.CustomerModify) *CustomerModifyDB {
	if customerModify == nil {
		return nil
	}

	return &CustomerModifyDB{
		ID:          customerModify.ID,
		Name:        customerModify.Name,
		Email:       customerModify.Email,
		SuiteNumber: customerModify.SuiteNumber,
	}
}
