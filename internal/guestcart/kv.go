package guestcart

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when no value is stored under the key.
var ErrNotFound = errors.New("guestcart: key not found")

// KV is the persistence capability the store writes whole carts through.
// It is the server-side analogue of the browser's localStorage slot: one
// opaque JSON blob per guest, read fully and written fully, last write wins.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
