// Package httpapi exposes the café backend over REST. Handlers translate
// between JSON DTOs and the domain services; all error mapping to HTTP status
// codes lives here.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/brewline/cafe-backend/internal/auth"
	"github.com/brewline/cafe-backend/internal/cart"
	"github.com/brewline/cafe-backend/internal/catalog"
	"github.com/brewline/cafe-backend/internal/checkout"
	"github.com/brewline/cafe-backend/internal/discount"
	"github.com/brewline/cafe-backend/internal/orders"
	"github.com/brewline/cafe-backend/internal/reviews"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: "",
	})
}

// respondDomainError converts service-layer sentinel errors to HTTP statuses.
// Anything unrecognized is a 500 with the detail withheld from the client.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrProductNotFound),
		errors.Is(err, orders.ErrOrderNotFound),
		errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, auth.ErrUserNotFound):
		respondError(w, http.StatusNotFound, "not_found", err.Error())

	case errors.Is(err, discount.ErrUnknownCode),
		errors.Is(err, discount.ErrInactiveCode),
		errors.Is(err, discount.ErrBelowMinimum),
		errors.Is(err, discount.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "invalid_discount", err.Error())

	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusBadRequest, "empty_cart", err.Error())

	case errors.Is(err, checkout.ErrPaymentRefused):
		respondError(w, http.StatusPaymentRequired, "payment_refused", err.Error())

	case errors.Is(err, auth.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "invalid_credentials", err.Error())

	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrMissingToken):
		respondError(w, http.StatusUnauthorized, "unauthenticated", err.Error())

	case errors.Is(err, auth.ErrEmailExists):
		respondError(w, http.StatusConflict, "email_exists", err.Error())

	case errors.Is(err, auth.ErrWeakPassword),
		errors.Is(err, reviews.ErrInvalidRating),
		errors.Is(err, reviews.ErrEmptyMessage):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())

	default:
		slog.Error("unhandled domain error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
