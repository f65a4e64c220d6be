package kv

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get when no value exists under the key.
	ErrNotFound = errors.New("kv: key not found")

	// ErrValueTooLarge is returned by Set when the value exceeds the store's
	// configured size ceiling.
	ErrValueTooLarge = errors.New("kv: value exceeds size ceiling")

	// ErrEmptyKey is returned when an empty key is used.
	ErrEmptyKey = errors.New("kv: key must not be empty")
)

// Store is a durable key-value store. Implementations must be safe for
// concurrent use.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the value under key. Deleting a missing key is a no-op.
	Delete(ctx context.Context, key string) error
}
