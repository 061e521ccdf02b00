package packages

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPackageID      = errors.New("invalid package id")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidDeclaredValue  = errors.New("invalid declared value")

	ErrPackageNotFound             = errors.New("package not found")
	ErrInvalidTransition           = errors.New("invalid status transition")
	ErrDeliveredOnlyByVerification = errors.New("delivered status is set only by delivery verification")
	ErrPackageNotArrived           = errors.New("package has not arrived")
	ErrConflict                    = errors.New("resource already exists")
)
