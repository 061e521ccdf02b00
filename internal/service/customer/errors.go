package customer

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidCustomerID     = errors.New("invalid customer id")

	ErrCustomerNotFound = errors.New("customer not found")
	ErrConflict         = errors.New("resource already exists")
)
