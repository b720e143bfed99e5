package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewline/cafe-backend/internal/catalog"
	"github.com/brewline/cafe-backend/internal/domain"
)

type OrderStore interface {
	GetOrderByNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	ListOrdersByUserID(ctx context.Context, userID string) ([]*domain.Order, error)
	MarkDelivered(ctx context.Context, orderNumber string) error
}

type OrdersHandler struct {
	orders   OrderStore
	carts    CartService
	products catalog.Repository
}

func NewOrdersHandler(orders OrderStore, carts CartService, products catalog.Repository) *OrdersHandler {
	return &OrdersHandler{
		orders:   orders,
		carts:    carts,
		products: products,
	}
}

// ListOrders returns the caller's orders newest first. The deliveries page
// polls this endpoint to move cards between the preparing / on-the-way /
// delivered columns.
func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	result, err := h.orders.ListOrdersByUserID(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if result == nil {
		result = []*domain.Order{}
	}

	respondJSON(w, http.StatusOK, result)
}

// Reorder replays a past order's items into the caller's cart at current
// menu prices. Products retired from the menu since then are skipped rather
// than failing the whole replay.
func (h *OrdersHandler) Reorder(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	orderNumber := chi.URLParam(r, "orderNumber")

	order, err := h.orders.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if order.UserID != userID {
		respondError(w, http.StatusForbidden, "forbidden", "order belongs to a different account")
		return
	}

	for _, it := range order.Items {
		product, err := h.products.GetProduct(r.Context(), it.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrProductNotFound) {
				slog.Warn("reorder skipping retired product",
					"order_number", orderNumber,
					"product_id", it.ProductID)
				continue
			}
			respondDomainError(w, err)
			return
		}

		for i := 0; i < it.Quantity; i++ {
			if err := h.carts.AddItem(r.Context(), userID, *product, it.Customizations); err != nil {
				respondDomainError(w, err)
				return
			}
		}
	}

	cart, err := h.carts.GetCart(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(cart.Items))
}

// MarkDelivered is the customer's delivery confirmation. The server stamps
// deliveredAt; the client only reports that the handoff happened.
func (h *OrdersHandler) MarkDelivered(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	orderNumber := chi.URLParam(r, "orderNumber")

	order, err := h.orders.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if order.UserID != userID {
		respondError(w, http.StatusForbidden, "forbidden", "order belongs to a different account")
		return
	}

	if err := h.orders.MarkDelivered(r.Context(), orderNumber); err != nil {
		respondDomainError(w, err)
		return
	}

	updated, err := h.orders.GetOrderByNumber(r.Context(), orderNumber)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
