package cart

import (
	"context"
	"errors"

	"github.com/brewline/cafe-backend/internal/domain"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
)

// Repository defines the interface for cart data operations.
// Consumers define this interface, not the MongoDB implementation.
type Repository interface {
	GetCart(ctx context.Context, userID string) (*domain.Cart, error)
	AddItem(ctx context.Context, userID string, item domain.LineItem) error
	UpdateItemQuantity(ctx context.Context, userID, key string, quantity int) error
	RemoveItem(ctx context.Context, userID, key string) error
	DeleteCart(ctx context.Context, userID string) error
}
