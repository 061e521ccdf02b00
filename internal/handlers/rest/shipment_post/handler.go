package shipment_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/generated/dto"
	"service/internal/service/auth"
	"service/internal/service/consolidation"
	"service/internal/service/packages"
	"service/internal/service/shipment"
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
	if !capability.IsStaff() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var shipmentCreateDTO dto.ShipmentCreate
	err = json.NewDecoder(r.Body).Decode(&shipmentCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.service.CreateShipment(r.Context(), shipmentCreateDTO.PackageIDs)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrNoPackages),
			errors.Is(err, shipment.ErrMixedOwners),
			errors.Is(err, packages.ErrInvalidPackageID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, consolidation.ErrPackageAlreadyLinked),
			errors.Is(err, shipment.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Shipment{
		ID:                      res.ID,
		TrackingNumber:          res.TrackingNumber,
		CustomerID:              res.CustomerID,
		Status:                  res.Status.String(),
		TotalWeightGrams:        res.TotalWeightGrams,
		TotalDeclaredValueCents: res.TotalDeclaredValueCents,
		EstimatedDelivery:       res.EstimatedDelivery,
		CreatedAt:               res.CreatedAt,
		UpdatedAt:               res.UpdatedAt,
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
