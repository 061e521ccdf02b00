package delivery_verify_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/generated/dto"
	"service/internal/service/auth"
	"service/internal/service/deliveryauth"
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

	var verifyDTO dto.VerifyRequest
	err = json.NewDecoder(r.Body).Decode(&verifyDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.service.VerifyAndDeliver(
		r.Context(),
		verifyDTO.PackageID,
		verifyDTO.SuiteNumber,
		verifyDTO.DeliveryCode,
		capability.ActorID,
	)
	if err != nil {
		switch {
		case errors.Is(err, deliveryauth.ErrInvalidPackageID),
			errors.Is(err, deliveryauth.ErrInvalidActorID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deliveryauth.ErrPackageNotFound),
			errors.Is(err, deliveryauth.ErrActorNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.VerifyResponse{
		Verified: res.Verified,
	}
	if res.Verified {
		response.ShipmentDelivered = &res.ShipmentDelivered
	} else {
		response.FailureReason = &res.FailureReason
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
