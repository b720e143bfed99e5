// Package guestcart maintains anonymous shopping carts keyed by a
// product+customization signature, persisted through an injected key-value
// capability so the logic is testable without real storage behind it.
package guestcart

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/brewline/cafe-backend/internal/domain"
)

// Quantity change directions accepted by UpdateQuantity.
const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
)

const cartKeyPrefix = "guestcart:"

// ComputeKey builds the deterministic line-item signature. Missing
// customization fields normalize to empty strings before joining, so two
// additions with the same product and options always collapse to one entry.
func ComputeKey(productID string, c domain.Customizations) string {
	return strings.Join([]string{productID, c.Size, c.Milk, c.Sugar, c.Heat}, "|")
}

// Store is stateless between calls: every operation reads the full cart from
// the KV, mutates it, and writes the full cart back. Concurrent writers to
// the same guest ID can overwrite each other; there is no version check.
type Store struct {
	kv KV
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Get returns the guest's cart in insertion order. A missing or unreadable
// cart reads as empty, never as an error to the caller's render path.
func (s *Store) Get(ctx context.Context, guestID string) ([]domain.LineItem, error) {
	data, err := s.kv.Get(ctx, cartKey(guestID))
	if err != nil {
		if err == ErrNotFound {
			return []domain.LineItem{}, nil
		}
		return nil, fmt.Errorf("load guest cart: %w", err)
	}

	var items []domain.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode guest cart: %w", err)
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	return items, nil
}

// Add appends a new line item with quantity 1, or increments the existing
// entry with the same signature. It always succeeds barring storage errors.
func (s *Store) Add(ctx context.Context, guestID string, product domain.Product, c domain.Customizations) ([]domain.LineItem, error) {
	items, err := s.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}

	key := ComputeKey(product.ID, c)
	found := false
	for i := range items {
		if items[i].Key == key {
			items[i].Quantity++
			items[i].TotalPrice = items[i].UnitPrice * float64(items[i].Quantity)
			found = true
			break
		}
	}
	if !found {
		items = append(items, domain.LineItem{
			Key:            key,
			ProductID:      product.ID,
			Name:           product.Name,
			UnitPrice:      product.Price,
			Quantity:       1,
			TotalPrice:     product.Price,
			Customizations: c,
			AddedAt:        time.Now().UTC(),
		})
	}

	if err := s.save(ctx, guestID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity applies a single increase or decrease to the entry with the
// given key. A quantity that would drop to zero or below removes the entry
// entirely. An unknown key is a no-op returning the unchanged cart.
func (s *Store) UpdateQuantity(ctx context.Context, guestID, key, direction string) ([]domain.LineItem, error) {
	items, err := s.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range items {
		if items[i].Key == key {
			idx = i
			break
		}
	}
	if idx == -1 {
		return items, nil
	}

	switch direction {
	case DirectionIncrease:
		items[idx].Quantity++
	case DirectionDecrease:
		items[idx].Quantity--
	default:
		return nil, fmt.Errorf("unknown quantity direction %q", direction)
	}

	if items[idx].Quantity <= 0 {
		items = append(items[:idx], items[idx+1:]...)
	} else {
		items[idx].TotalPrice = items[idx].UnitPrice * float64(items[idx].Quantity)
	}

	if err := s.save(ctx, guestID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove filters out the entry with the given key. Unknown keys are a no-op.
func (s *Store) Remove(ctx context.Context, guestID, key string) ([]domain.LineItem, error) {
	items, err := s.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}

	filtered := items[:0:0]
	for _, it := range items {
		if it.Key != key {
			filtered = append(filtered, it)
		}
	}
	if filtered == nil {
		filtered = []domain.LineItem{}
	}

	if err := s.save(ctx, guestID, filtered); err != nil {
		return nil, err
	}
	return filtered, nil
}

// Clear empties the guest's cart.
func (s *Store) Clear(ctx context.Context, guestID string) error {
	if err := s.kv.Delete(ctx, cartKey(guestID)); err != nil {
		return fmt.Errorf("clear guest cart: %w", err)
	}
	return nil
}

func (s *Store) save(ctx context.Context, guestID string, items []domain.LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode guest cart: %w", err)
	}
	if err := s.kv.Set(ctx, cartKey(guestID), data); err != nil {
		return fmt.Errorf("save guest cart: %w", err)
	}
	return nil
}

func cartKey(guestID string) string {
	return cartKeyPrefix + guestID
}
