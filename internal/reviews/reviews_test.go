package reviews

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brewline/cafe-backend/internal/domain"
)

type mockRepository struct {
	mu      sync.RWMutex
	reviews []domain.Review
}

func (m *mockRepository) Insert(_ context.Context, review *domain.Review) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reviews = append(m.reviews, *review)
	return nil
}

func (m *mockRepository) ListByUserID(_ context.Context, userID string) ([]domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []domain.Review
	for _, r := range m.reviews {
		if r.UserID == userID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockRepository) ListRecent(_ context.Context, limit int) ([]domain.Review, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if len(m.reviews) <= limit {
		return m.reviews, nil
	}
	return m.reviews[len(m.reviews)-limit:], nil
}

func TestCreate_Success(t *testing.T) {
	repo := &mockRepository{}
	sut := NewService(repo)

	review, err := sut.Create(context.Background(), "user-1", "Ada", 5, "  great flat white  ")

	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
	assert.Equal(t, "great flat white", review.Message)
	assert.False(t, review.CreatedAt.IsZero())

	mine, err := sut.ListMine(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestCreate_RatingBounds(t *testing.T) {
	sut := NewService(&mockRepository{})

	for _, rating := range []int{0, -1, 6} {
		_, err := sut.Create(context.Background(), "user-1", "Ada", rating, "message")
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	for _, rating := range []int{1, 5} {
		_, err := sut.Create(context.Background(), "user-1", "Ada", rating, "message")
		assert.NoError(t, err)
	}
}

func TestCreate_EmptyMessage(t *testing.T) {
	sut := NewService(&mockRepository{})

	_, err := sut.Create(context.Background(), "user-1", "Ada", 4, "   ")

	assert.ErrorIs(t, err, ErrEmptyMessage)
}
