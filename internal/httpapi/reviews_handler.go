package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/brewline/cafe-backend/internal/domain"
)

type ReviewService interface {
	Create(ctx context.Context, userID, username string, rating int, message string) (*domain.Review, error)
	ListMine(ctx context.Context, userID string) ([]domain.Review, error)
	ListRecent(ctx context.Context) ([]domain.Review, error)
}

type ReviewsHandler struct {
	service ReviewService
	users   AuthService
}

func NewReviewsHandler(service ReviewService, users AuthService) *ReviewsHandler {
	return &ReviewsHandler{
		service: service,
		users:   users,
	}
}

type CreateReviewRequestDTO struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

func (h *ReviewsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	var req CreateReviewRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	// reviews carry the display name, not the account id
	user, err := h.users.Me(r.Context(), userID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	review, err := h.service.Create(r.Context(), userID, user.Name, req.Rating, req.Message)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, review)
}

func (h *ReviewsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListMine(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if result == nil {
		result = []domain.Review{}
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *ReviewsHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRecent(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}
	if result == nil {
		result = []domain.Review{}
	}

	respondJSON(w, http.StatusOK, result)
}
