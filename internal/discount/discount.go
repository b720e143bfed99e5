// Package discount validates promo codes against the discounts collection.
// A descriptor that fails validation is never handed to the totals
// calculator; callers treat a rejection exactly like "no discount".
package discount

import (
	"context"
	"errors"
	"fmt"

	"github.com/brewline/cafe-backend/internal/domain"
)

var (
	ErrUnknownCode  = errors.New("invalid discount code")
	ErrBelowMinimum = errors.New("cart subtotal below discount minimum")
	ErrInactiveCode = errors.New("discount code is no longer active")
	ErrEmptyCart    = errors.New("cannot apply a discount to an empty cart")
)

type Repository interface {
	GetByCode(ctx context.Context, code string) (*domain.DiscountDescriptor, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Validate looks up a code and checks it against the cart's raw subtotal.
// It returns the descriptor only when every check passes.
func (s *Service) Validate(ctx context.Context, code string, rawSubtotal float64) (*domain.DiscountDescriptor, error) {
	if rawSubtotal <= 0 {
		return nil, ErrEmptyCart
	}

	descriptor, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, ErrUnknownCode) {
			return nil, ErrUnknownCode
		}
		return nil, fmt.Errorf("discount lookup failed: %w", err)
	}

	if !descriptor.Active {
		return nil, ErrInactiveCode
	}
	if descriptor.MinCartTotal > 0 && rawSubtotal < descriptor.MinCartTotal {
		return nil, fmt.Errorf("%w: minimum subtotal $%.2f", ErrBelowMinimum, descriptor.MinCartTotal)
	}

	return descriptor, nil
}
