package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/brewline/cafe-backend/internal/catalog"
	"github.com/brewline/cafe-backend/internal/domain"
	"github.com/brewline/cafe-backend/internal/guestcart"
)

// GuestAddressStore is the read/write surface for guest delivery addresses.
type GuestAddressStore interface {
	Get(ctx context.Context, guestID string) (*domain.DeliveryAddress, error)
	Set(ctx context.Context, guestID string, address *domain.DeliveryAddress) error
}

type GuestHandler struct {
	store     *guestcart.Store
	products  catalog.Repository
	addresses GuestAddressStore
}

func NewGuestHandler(store *guestcart.Store, products catalog.Repository, addresses GuestAddressStore) *GuestHandler {
	return &GuestHandler{
		store:     store,
		products:  products,
		addresses: addresses,
	}
}

type CustomizationsDTO struct {
	Size  string `json:"size"`
	Milk  string `json:"milk"`
	Sugar string `json:"sugar"`
	Heat  string `json:"heat"`
}

func (d CustomizationsDTO) toDomain() domain.Customizations {
	return domain.Customizations{
		Size:  d.Size,
		Milk:  d.Milk,
		Sugar: d.Sugar,
		Heat:  d.Heat,
	}
}

type AddItemRequestDTO struct {
	ProductID      string            `json:"product_id"`
	Customizations CustomizationsDTO `json:"customizations"`
}

// UpdateQuantityRequestDTO accepts either an action ("increase"/"decrease")
// or a signed delta; action wins when both are present.
type UpdateQuantityRequestDTO struct {
	Action string `json:"action,omitempty"`
	Delta  *int   `json:"delta,omitempty"`
}

// resolve normalizes the two request shapes into a direction and a step
// count. ok is false when neither field carries a usable value.
func (d UpdateQuantityRequestDTO) resolve() (direction string, steps int, ok bool) {
	switch d.Action {
	case guestcart.DirectionIncrease, guestcart.DirectionDecrease:
		return d.Action, 1, true
	case "":
	default:
		return "", 0, false
	}

	if d.Delta == nil || *d.Delta == 0 {
		return "", 0, false
	}
	if *d.Delta > 0 {
		return guestcart.DirectionIncrease, *d.Delta, true
	}
	return guestcart.DirectionDecrease, -*d.Delta, true
}

type CartResponseDTO struct {
	Items []domain.LineItem `json:"items"`
	Total float64           `json:"total"`
}

func cartResponse(items []domain.LineItem) CartResponseDTO {
	if items == nil {
		items = []domain.LineItem{}
	}
	cart := domain.Cart{Items: items}
	return CartResponseDTO{Items: items, Total: cart.Total()}
}

// StartSession issues an opaque guest ID. The client sends it back in the
// X-Guest-Id header on every guest call.
func (h *GuestHandler) StartSession(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusCreated, map[string]string{"guest_id": uuid.NewString()})
}

func (h *GuestHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	guestID, ok := requireGuestID(w, r)
	if !ok {
		return
	}

	items, err := h.store.Get(r.Context(), guestID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(items))
}

func (h *GuestHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	guestID, ok := requireGuestID(w, r)
	if !ok {
		return
	}

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

	items, err := h.store.Add(r.Context(), guestID, *product, req.Customizations.toDomain())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, cartResponse(items))
}

func (h *GuestHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	guestID, ok := requireGuestID(w, r)
	if !ok {
		return
	}

	key := chi.URLParam(r, "key")
	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	direction, steps, ok := req.resolve()
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid_action", "action must be increase or decrease, or delta a non-zero integer")
		return
	}

	var items []domain.LineItem
	for i := 0; i < steps; i++ {
		var err error
		items, err = h.store.UpdateQuantity(r.Context(), guestID, key, direction)
		if err != nil {
			respondDomainError(w, err)
			return
		}
	}

	respondJSON(w, http.StatusOK, cartResponse(items))
}

func (h *GuestHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	guestID, ok := requireGuestID(w, r)
	if !ok {
		return
	}

	items, err := h.store.Remove(r.Context(), guestID, chi.URLParam(r, "key"))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(items))
}

func (h *GuestHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	guestID, ok := requireGuestID(w, r)
	if !ok {
		return
	}

	if err := h.store.Clear(r.Context(), guestID); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(nil))
}

func (h *GuestHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	guestID, ok := requireGuestID(w, r)
	if !ok {
		return
	}

	address, err := h.addresses.Get(r.Context(), guestID)
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

func (h *GuestHandler) SetAddress(w http.ResponseWriter, r *http.Request) {
	guestID, ok := requireGuestID(w, r)
	if !ok {
		return
	}

	var address domain.DeliveryAddress
	if err := json.NewDecoder(r.Body).Decode(&address); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if address.DisplayAddress == "" {
		respondError(w, http.StatusBadRequest, "invalid_address", "displayAddress is required")
		return
	}

	address.UpdatedAt = time.Now().UTC()
	if err := h.addresses.Set(r.Context(), guestID, &address); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, address)
}

func requireGuestID(w http.ResponseWriter, r *http.Request) (string, bool) {
	guestID := guestIDFromRequest(r)
	if guestID == "" {
		respondError(w, http.StatusBadRequest, "missing_guest_id", "X-Guest-Id header is required")
		return "", false
	}
	return guestID, true
}
