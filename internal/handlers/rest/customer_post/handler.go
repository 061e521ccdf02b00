package customer_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"service/internal/entities"
	"service/internal/generated/dto"
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
	var customerCreateDTO dto.CustomerCreate
	err := json.NewDecoder(r.Body).Decode(&customerCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	customerModifyEntity := entities.CustomerModify{
		Name:  &customerCreateDTO.Name,
		Email: &customerCreateDTO.Email,
	}

	res, err := h.service.CreateCustomer(r.Context(), customerModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingRequiredFields),
			errors.Is(err, customer.ErrInvalidEmail):
			w.WriteHeader(http.StatusBadRequest)
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
