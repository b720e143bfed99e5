package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/brewline/cafe-backend/internal/domain"
)

type DiscountService interface {
	Validate(ctx context.Context, code string, rawSubtotal float64) (*domain.DiscountDescriptor, error)
}

type DiscountHandler struct {
	discounts DiscountService
}

func NewDiscountHandler(discounts DiscountService) *DiscountHandler {
	return &DiscountHandler{discounts: discounts}
}

// Validate checks a code against the caller's stated subtotal. The checkout
// re-validates against the authoritative cart; this endpoint only powers the
// inline feedback in the cart UI.
func (h *DiscountHandler) Validate(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	subtotal, err := strconv.ParseFloat(r.URL.Query().Get("subtotal"), 64)
	if err != nil || subtotal < 0 {
		respondError(w, http.StatusBadRequest, "invalid_subtotal", "subtotal query parameter must be a non-negative number")
		return
	}

	descriptor, err := h.discounts.Validate(r.Context(), code, subtotal)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, descriptor)
}
