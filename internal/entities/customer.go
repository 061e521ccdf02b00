package entities

import "time"

type Customer struct {
	ID          int64
	Name        string
	Email       string
	SuiteNumber *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CustomerModify struct {
	ID          *int64
	Name        *string
	Email       *string
	SuiteNumber *string
}
