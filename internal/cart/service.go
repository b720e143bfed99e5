package cart

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/brewline/cafe-backend/internal/domain"
	"github.com/brewline/cafe-backend/internal/guestcart"
	"github.com/brewline/cafe-backend/internal/metrics"
)

// Service fronts the cart repository with a read-through cache. Writes go to
// the repository and invalidate the cache; reads collapse concurrent misses
// through singleflight so a hot user cannot stampede MongoDB.
type Service struct {
	repo  Repository
	cache Cache
	guest *guestcart.Store
	sfg   singleflight.Group
}

func NewService(repo Repository, cache Cache, guest *guestcart.Store) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		guest: guest,
	}
}

// GetCart returns the user's cart, or an empty cart when none exists yet.
func (s *Service) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(userID, func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, userID)
		if err == nil {
			metrics.CartCacheHits.Inc()
			return cart, nil
		}

		if !errors.Is(err, ErrCacheMiss) {
			slog.Warn("cart cache get failed", "error", err)
		}
		metrics.CartCacheMisses.Inc()

		cart, errGet := s.repo.GetCart(ctx, userID)
		if errGet != nil {
			if errors.Is(errGet, ErrCartNotFound) {
				return &domain.Cart{
					UserID:    userID,
					Items:     []domain.LineItem{},
					CreatedAt: time.Now(),
					UpdatedAt: time.Now(),
				}, nil
			}
			return nil, errGet
		}

		go func() {
			if errSet := s.cache.Set(context.Background(), userID, cart); errSet != nil {
				slog.Warn("cart cache set failed", "error", errSet)
			}
		}()

		return cart, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Cart), nil
}

// AddItem adds one unit of a product+customization to the user's cart,
// collapsing into an existing line item with the same signature.
func (s *Service) AddItem(ctx context.Context, userID string, product domain.Product, c domain.Customizations) error {
	item := domain.LineItem{
		Key:            guestcart.ComputeKey(product.ID, c),
		ProductID:      product.ID,
		Name:           product.Name,
		UnitPrice:      product.Price,
		Quantity:       1,
		TotalPrice:     product.Price,
		Customizations: c,
	}

	if err := s.repo.AddItem(ctx, userID, item); err != nil {
		return err
	}
	s.invalidateCache(userID)
	return nil
}

// AdjustQuantity applies a +1/-1 style delta to a line item. Dropping to zero
// or below removes the item; an unknown key is a no-op to match the guest
// store's semantics.
func (s *Service) AdjustQuantity(ctx context.Context, userID, key string, delta int) error {
	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return err
	}

	var current int
	found := false
	for _, it := range cart.Items {
		if it.Key == key {
			current = it.Quantity
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.repo.UpdateItemQuantity(ctx, userID, key, current+delta); err != nil {
		return err
	}
	s.invalidateCache(userID)
	return nil
}

// RemoveItem deletes a line item by key. A missing cart or key is a no-op.
func (s *Service) RemoveItem(ctx context.Context, userID, key string) error {
	err := s.repo.RemoveItem(ctx, userID, key)
	if err != nil && !errors.Is(err, ErrCartNotFound) {
		return err
	}
	s.invalidateCache(userID)
	return nil
}

// ClearCart empties the user's cart. Clearing a cart that does not exist
// succeeds.
func (s *Service) ClearCart(ctx context.Context, userID string) error {
	err := s.repo.DeleteCart(ctx, userID)
	if err != nil && !errors.Is(err, ErrCartNotFound) {
		return err
	}
	s.invalidateCache(userID)
	return nil
}

// MergeGuestCart drains the guest cart into the user's cart and clears the
// guest side. Quantities accumulate: each guest unit is replayed as one add,
// so signatures already in the user cart collapse rather than duplicate.
func (s *Service) MergeGuestCart(ctx context.Context, userID, guestID string) error {
	if guestID == "" {
		return nil
	}

	items, err := s.guest.Get(ctx, guestID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	for _, it := range items {
		replay := it
		replay.AddedAt = time.Time{}
		if err := s.repo.AddItem(ctx, userID, replay); err != nil {
			return err
		}
	}

	if err := s.guest.Clear(ctx, guestID); err != nil {
		slog.Warn("guest cart clear after merge failed", "error", err)
	}
	s.invalidateCache(userID)
	return nil
}

func (s *Service) invalidateCache(userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, userID); err != nil {
		slog.Warn("cart cache invalidate failed", "error", err)
	}
}
