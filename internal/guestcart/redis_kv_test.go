package guestcart

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/brewline/cafe-backend/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*RedisKV, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisKV(client), mr
}

func TestRedisKV_GetMissing(t *testing.T) {
	kv, _ := setupTestRedis(t)

	_, err := kv.Get(context.Background(), "guestcart:none")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisKV_SetGetDelete(t *testing.T) {
	kv, _ := setupTestRedis(t)
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "guestcart:g1", []byte(`[]`)))

	data, err := kv.Get(ctx, "guestcart:g1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), data)

	require.NoError(t, kv.Delete(ctx, "guestcart:g1"))
	_, err = kv.Get(ctx, "guestcart:g1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisKV_SetAppliesTTL(t *testing.T) {
	kv, mr := setupTestRedis(t)

	require.NoError(t, kv.Set(context.Background(), "guestcart:g1", []byte(`[]`)))
	assert.Greater(t, mr.TTL("guestcart:g1").Seconds(), 0.0)
}

func TestStoreOverRedis(t *testing.T) {
	kv, _ := setupTestRedis(t)
	sut := NewStore(kv)
	ctx := context.Background()

	c := domain.Customizations{Size: "Small", Milk: "Oat"}
	_, err := sut.Add(ctx, "g1", latte, c)
	require.NoError(t, err)
	items, err := sut.Add(ctx, "g1", latte, c)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)

	reloaded, err := sut.Get(ctx, "g1")
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, 9.00, reloaded[0].TotalPrice)
}
