// Package kv is the keyed partition access of the local store: one SQLite
// table of (key, value) pairs per partition.
package kv

import "context"

// Repository is the per-partition contract. Every call is a single statement
// and therefore individually atomic.
type Repository interface {
	// Get returns (nil, nil) when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put inserts or overwrites key.
	Put(ctx context.Context, key string, value []byte) error
	// Delete is idempotent.
	Delete(ctx context.Context, key string) error
	GetAll(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
