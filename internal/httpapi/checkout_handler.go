package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/brewline/cafe-backend/internal/checkout"
	"github.com/brewline/cafe-backend/internal/domain"
)

type CheckoutService interface {
	Quote(ctx context.Context, userID, discountCode string) (domain.OrderTotals, error)
	Checkout(ctx context.Context, userID string, req checkout.Request) (*domain.Order, error)
	GuestCheckout(ctx context.Context, guestID, deliveryNotes string) (*domain.Order, error)
}

type CheckoutHandler struct {
	service CheckoutService
}

func NewCheckoutHandler(service CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type QuoteRequestDTO struct {
	DiscountCode string `json:"discount_code,omitempty"`
}

type CheckoutRequestDTO struct {
	DiscountCode  string `json:"discount_code,omitempty"`
	DeliveryNotes string `json:"delivery_notes,omitempty"`
	Token         string `json:"token,omitempty"`
}

// Quote previews totals for the authoritative cart without charging anything.
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req QuoteRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
			return
		}
	}

	totals, err := h.service.Quote(r.Context(), userID, req.DiscountCode)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, totals)
}

func (h *CheckoutHandler) Process(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Token == "" {
		respondError(w, http.StatusBadRequest, "missing_token", "payment token is required")
		return
	}

	order, err := h.service.Checkout(r.Context(), userID, checkout.Request{
		DiscountCode:  req.DiscountCode,
		DeliveryNotes: req.DeliveryNotes,
		PaymentToken:  req.Token,
	})
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}

func (h *CheckoutHandler) GuestCheckout(w http.ResponseWriter, r *http.Request) {
	guestID, ok := requireGuestID(w, r)
	if !ok {
		return
	}

	var req CheckoutRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
			return
		}
	}

	order, err := h.service.GuestCheckout(r.Context(), guestID, req.DeliveryNotes)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, order)
}
