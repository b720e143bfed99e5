// Package reviews stores customer feedback: a star rating and a short message.
package reviews

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/brewline/cafe-backend/internal/domain"
)

var (
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	ErrEmptyMessage  = errors.New("review message is required")
)

// recentLimit caps the public feed; older reviews stay queryable per user.
const recentLimit = 20

type Repository interface {
	Insert(ctx context.Context, review *domain.Review) error
	ListByUserID(ctx context.Context, userID string) ([]domain.Review, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Review, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, userID, username string, rating int, message string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	review := &domain.Review{
		UserID:    userID,
		Username:  username,
		Rating:    rating,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, review); err != nil {
		return nil, fmt.Errorf("store review: %w", err)
	}
	return review, nil
}

func (s *Service) ListMine(ctx context.Context, userID string) ([]domain.Review, error) {
	return s.repo.ListByUserID(ctx, userID)
}

func (s *Service) ListRecent(ctx context.Context) ([]domain.Review, error) {
	return s.repo.ListRecent(ctx, recentLimit)
}
