package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"StoreFront/internal/service"
)

// CustomerHandler обслуживает регистрацию и вход покупателей.
type CustomerHandler struct {
	customers *service.CustomerService
	logger    *zap.SugaredLogger
}

func NewCustomerHandler(customers *service.CustomerService, logger *zap.SugaredLogger) *CustomerHandler {
	return &CustomerHandler{customers: customers, logger: logger}
}

type customerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func decodeCustomer(r *http.Request) (customerRequest, bool) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, false
	}
	req.Email = strings.TrimSpace(req.Email)
	return req, req.Email != "" && req.Password != ""
}

// Register — POST /api/customers/register
func (h *CustomerHandler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCustomer(r)
	if !ok {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	c, err := h.customers.Register(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		http.Error(w, "email already in use", http.StatusConflict)
		return
	case err != nil:
		h.logger.Errorw("register failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// Login — POST /api/customers/login
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCustomer(r)
	if !ok {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	c, err := h.customers.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		http.Error(w, "invalid email or password", http.StatusUnauthorized)
		return
	case err != nil:
		h.logger.Errorw("login failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}
