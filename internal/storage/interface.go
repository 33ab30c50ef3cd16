package storage

import (
	"context"
)

// Storage is the durable key-value collaborator. Values are opaque bytes,
// usually JSON. Get returns model.ErrKeyNotFound for missing keys.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Pinger is implemented by backends that can check their connection
// without touching any slot
type Pinger interface {
	Ping(ctx context.Context) error
}
