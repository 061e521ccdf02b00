package customer

import "time"

type CustomerDB struct {
	ID          int64
	Name        string
	Email       string
	SuiteNumber *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CustomerModifyDB struct {
	ID          *int64
	Name        *string
	Email       *string
	SuiteNumber *string
}
