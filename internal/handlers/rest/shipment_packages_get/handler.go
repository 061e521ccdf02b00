package shipment_packages_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/service/auth"
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

	trackingNumber := mux.Vars(r)["tracking_number"]

	packageEntities, err := h.service.GetShipmentPackages(r.Context(), trackingNumber)
	if err != nil {
		switch {
		case errors.Is(err, shipment.ErrInvalidTrackingNumber):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, shipment.ErrShipmentNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	if len(packageEntities) > 0 && !capability.CanActFor(packageEntities[0].CustomerID) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	packageDTOs := make([]dto.Package, len(packageEntities))
	for i, packageEntity := range packageEntities {
		packageDTOs[i].ID = packageEntity.ID
		packageDTOs[i].PackageID = packageEntity.PackageID
		packageDTOs[i].TrackingNumber = packageEntity.TrackingNumber
		packageDTOs[i].CustomerID = packageEntity.CustomerID
		packageDTOs[i].Status = packageEntity.Status.String()
		packageDTOs[i].Description = packageEntity.Description
		packageDTOs[i].Vendor = packageEntity.Vendor
		packageDTOs[i].WeightGrams = packageEntity.WeightGrams
		packageDTOs[i].DeclaredValueCents = packageEntity.DeclaredValueCents
		packageDTOs[i].ShipmentID = packageEntity.ShipmentID
		packageDTOs[i].ReceivedAt = packageEntity.ReceivedAt
		packageDTOs[i].CreatedAt = packageEntity.CreatedAt
		packageDTOs[i].UpdatedAt = packageEntity.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(packageDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
