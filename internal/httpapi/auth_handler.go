package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/brewline/cafe-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, name, password, guestID string) (*domain.User, string, error)
	Login(ctx context.Context, email, password, guestID string) (*domain.User, string, error)
	Me(ctx context.Context, userID string) (*domain.User, error)
	Address(ctx context.Context, userID string) (*domain.DeliveryAddress, error)
	SetAddress(ctx context.Context, userID string, address *domain.DeliveryAddress) error
}

type AuthHandler struct {
	service AuthService
}

func NewAuthHandler(service AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type SignupRequestDTO struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponseDTO struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Email == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "invalid_request", "email and name are required")
		return
	}

	user, token, err := h.service.Signup(r.Context(), req.Email, req.Name, req.Password, guestIDFromRequest(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, SessionResponseDTO{Token: token, User: user})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password, guestIDFromRequest(r))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, SessionResponseDTO{Token: token, User: user})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Me(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	address, err := h.service.Address(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if address == nil {
		respondError(w, http.StatusNotFound, "not_found", "no delivery address saved")
		return
	}

	respondJSON(w, http.StatusOK, address)
}

func (h *AuthHandler) SetAddress(w http.ResponseWriter, r *http.Request) {
	var address domain.DeliveryAddress
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if address.DisplayAddress == "" {
		respondError(w, http.StatusBadRequest, "invalid_address", "displayAddress is required")
		return
	}

	if err := h.service.SetAddress(r.Context(), userIDFromContext(r.Context()), &address); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, address)
}
