package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/brewline/cafe-backend/internal/catalog"
	"github.com/brewline/cafe-backend/internal/domain"
)

type MenuHandler struct {
	repo catalog.Repository
}

func NewMenuHandler(repo catalog.Repository) *MenuHandler {
	return &MenuHandler{repo: repo}
}

func (h *MenuHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := catalog.Filter{
		Category:    r.URL.Query().Get("category"),
		Subcategory: r.URL.Query().Get("subcategory"),
	}

	products, err := h.repo.ListProducts(r.Context(), filter)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// recommendationLimit caps the recommendations rail on the dashboard.
const recommendationLimit = 6

func (h *MenuHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.ListRecommended(r.Context(), recommendationLimit)
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if products == nil {
		products = []*domain.Product{}
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *MenuHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, http.StatusBadRequest, "invalid_product_id", "product id is required")
		return
	}

	product, err := h.repo.GetProduct(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
