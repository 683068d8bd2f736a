// Package kv stores opaque values under string keys in the kv_store table.
// Every persisted piece of application state (customer list, accounts,
// preferences) lives under one key.
package kv

import (
	"context"
)

// Repository is a flat key/value store. Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
