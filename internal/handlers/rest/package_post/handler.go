package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/generated/dto"
	"service/internal/service/auth"
	"service/internal/service/packages"
	"service/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	capability, err := auth.Resolve(r.Header.Get("X-Actor-ID"), r.Header.Get("X-Actor-Role"))
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var packageCreateDTO dto.PackageCreate
	err = json.NewDecoder(r.Body).Decode(&packageCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !capability.CanActFor(packageCreateDTO.CustomerID) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	packageModifyEntity := entities.PackageModify{
		CustomerID:  &packageCreateDTO.CustomerID,
		Description: &packageCreateDTO.Description,
	}

	// Опциональные параметры
	if packageCreateDTO.Vendor != nil {
		packageModifyEntity.Vendor = packageCreateDTO.Vendor
	}
	if packageCreateDTO.WeightGrams != nil {
		packageModifyEntity.WeightGrams = packageCreateDTO.WeightGrams
	}
	if packageCreateDTO.DeclaredValueCents != nil {
		packageModifyEntity.DeclaredValueCents = packageCreateDTO.DeclaredValueCents
	}

	res, err := h.service.CreatePackage(r.Context(), packageModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrMissingRequiredFields),
			errors.Is(err, packages.ErrInvalidWeight),
			errors.Is(err, packages.ErrInvalidDeclaredValue):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Package{
		ID:                 res.ID,
		PackageID:          res.PackageID,
		TrackingNumber:     res.TrackingNumber,
		CustomerID:         res.CustomerID,
		Status:             res.Status.String(),
		Description:        res.Description,
		Vendor:             res.Vendor,
		WeightGrams:        res.WeightGrams,
		DeclaredValueCents: res.DeclaredValueCents,
		ShipmentID:         res.ShipmentID,
		ReceivedAt:         res.ReceivedAt,
		CreatedAt:          res.CreatedAt,
		UpdatedAt:          res.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
