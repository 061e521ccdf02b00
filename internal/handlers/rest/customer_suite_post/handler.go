package customer_suite_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"service/internal/generated/dto"
	"service/internal/service/auth"
	"service/internal/service/customer"
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

	customerID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || customerID <= 0 {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	res, err := h.service.AssignSuite(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrInvalidCustomerID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, customer.ErrCustomerNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, customer.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Customer{
		ID:          res.ID,
		Name:        res.Name,
		Email:       res.Email,
		SuiteNumber: res.SuiteNumber,
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
