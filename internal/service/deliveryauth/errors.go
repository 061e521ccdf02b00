package deliveryauth

import (
	"errors"

	"service/internal/service/packages"
)

var (
	ErrInvalidPackageID = errors.New("invalid package id")
	ErrInvalidActorID   = errors.New("invalid actor id")

	// Репозиторий посылок общий с сервисом packages, поэтому его
	// сентинел используется как есть.
	ErrPackageNotFound = packages.ErrPackageNotFound
	ErrActorNotFound   = errors.New("actor not found")
)
