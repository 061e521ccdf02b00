package package_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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
	if !capability.IsStaff() {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	var statusUpdateDTO dto.PackageStatusUpdate
	err = json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packageID := mux.Vars(r)["id"]
	newStatus := entities.PackageStatusType(statusUpdateDTO.Status)

	res, err := h.service.AdvanceStatus(r.Context(), packageID, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrInvalidPackageID),
			errors.Is(err, packages.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, packages.ErrInvalidTransition),
			errors.Is(err, packages.ErrDeliveredOnlyByVerification):
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
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
