package packages_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/service/auth"
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

	customerID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || customerID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !capability.CanActFor(customerID) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	packageEntities, err := h.service.GetPackagesByCustomer(r.Context(), customerID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
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
