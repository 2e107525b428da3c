package storage

import "context"

// KeyValueStorage is the durable slot store the festival state is mirrored to.
// Get returns ErrKeyNotFound when the key was never written or was deleted.
type KeyValueStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
