package package_delivery_code_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
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

	packageID := mux.Vars(r)["id"]

	code, err := h.service.IssueDeliveryCode(r.Context(), packageID)
	if err != nil {
		switch {
		case errors.Is(err, packages.ErrInvalidPackageID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, packages.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, packages.ErrPackageNotArrived):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryCodeResponse{
		PackageID:    packageID,
		DeliveryCode: code,
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
