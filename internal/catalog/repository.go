package catalog

import (
	"context"
	"errors"

	"github.com/brewline/cafe-backend/internal/domain"
)

var ErrProductNotFound = errors.New("product not found")

// Filter narrows a menu listing. Zero values mean "no constraint".
type Filter struct {
	Category    string
	Subcategory string
}

type Repository interface {
	ListProducts(ctx context.Context, filter Filter) ([]*domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListRecommended(ctx context.Context, limit int) ([]*domain.Product, error)
}
