package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/brewline/cafe-backend/internal/domain"
	"github.com/brewline/cafe-backend/internal/guestcart"
)

// KVGuestAddressStore keeps a guest's delivery address in the same key-value
// store as the guest cart, keyed by guest session ID. Get returns (nil, nil)
// when the guest never saved an address.
type KVGuestAddressStore struct {
	kv guestcart.KV
}

func NewKVGuestAddressStore(kv guestcart.KV) *KVGuestAddressStore {
	return &KVGuestAddressStore{kv: kv}
}

func (s *KVGuestAddressStore) Get(ctx context.Context, guestID string) (*domain.DeliveryAddress, error) {
	raw, err := s.kv.Get(ctx, addressKey(guestID))
	if err != nil {
		if errors.Is(err, guestcart.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("read guest address: %w", err)
	}

	var address domain.DeliveryAddress
	if err := json.Unmarshal(raw, &address); err != nil {
		return nil, fmt.Errorf("decode guest address: %w", err)
	}
	return &address, nil
}

func (s *KVGuestAddressStore) Set(ctx context.Context, guestID string, address *domain.DeliveryAddress) error {
	raw, err := json.Marshal(address)
	if err != nil {
		return fmt.Errorf("encode guest address: %w", err)
	}
	if err := s.kv.Set(ctx, addressKey(guestID), raw); err != nil {
		return fmt.Errorf("write guest address: %w", err)
	}
	return nil
}

func (s *KVGuestAddressStore) Clear(ctx context.Context, guestID string) error {
	return s.kv.Delete(ctx, addressKey(guestID))
}

func addressKey(guestID string) string {
	return "guestaddr:" + guestID
}
