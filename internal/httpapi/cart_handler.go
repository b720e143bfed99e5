package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewline/cafe-backend/internal/catalog"
	"github.com/brewline/cafe-backend/internal/domain"
	"github.com/brewline/cafe-backend/internal/guestcart"
)

type CartService interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, product domain.Product, c domain.Customizations) error
	AdjustQuantity(ctx context.Context, userID, key string, delta int) error
	RemoveItem(ctx context.Context, userID, key string) error
	ClearCart(ctx context.Context, userID string) error
}

type CartHandler struct {
	carts    CartService
	products catalog.Repository
}

func NewCartHandler(carts CartService, products catalog.Repository) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	cart, err := h.carts.GetCart(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(cart.Items))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.ProductID == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product_id is required")
		return
	}

	product, err := h.products.GetProduct(r.Context(), req.ProductID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	if err := h.carts.AddItem(r.Context(), userID, *product, req.Customizations.toDomain()); err != nil {
		respondDomainError(w, err)
		return
	}

	h.respondCart(w, r, http.StatusCreated, userID)
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	var delta int
	switch req.Action {
	case guestcart.DirectionIncrease:
		delta = 1
	case guestcart.DirectionDecrease:
		delta = -1
	case "":
		if req.Delta == nil || *req.Delta == 0 {
			respondError(w, http.StatusBadRequest, "invalid_action", "action must be increase or decrease, or delta a non-zero integer")
			return
		}
		delta = *req.Delta
	default:
		respondError(w, http.StatusBadRequest, "invalid_action", "action must be increase or decrease")
		return
	}

	if err := h.carts.AdjustQuantity(r.Context(), userID, chi.URLParam(r, "key"), delta); err != nil {
		respondDomainError(w, err)
		return
	}

	h.respondCart(w, r, http.StatusOK, userID)
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	if err := h.carts.RemoveItem(r.Context(), userID, chi.URLParam(r, "key")); err != nil {
		respondDomainError(w, err)
		return
	}

	h.respondCart(w, r, http.StatusOK, userID)
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	if err := h.carts.ClearCart(r.Context(), userID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(nil))
}

func (h *CartHandler) respondCart(w http.ResponseWriter, r *http.Request, status int, userID string) {
	cart, err := h.carts.GetCart(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	respondJSON(w, status, cartResponse(cart.Items))
}
