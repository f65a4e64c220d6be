// Package kv provides a minimal durable key-value store abstraction used by
// the notification engine for its bounded dismissal history.
//
// The Store interface deals in raw bytes under string keys, which keeps the
// engine independent of the persistence mechanism the host application ships
// with. Four implementations are included:
//
//   - Memory: map-backed, for tests and ephemeral setups
//   - File: one file per key in a directory, with atomic writes
//   - Redis: backed by a redis server via go-redis
//   - Mongo: backed by a MongoDB collection, for document-database hosts
//
// Stores may enforce a per-value size ceiling; writes above the ceiling fail
// with ErrValueTooLarge so callers can degrade gracefully instead of growing
// durable storage unboundedly.
//
// # Basic Usage
//
//	store := kv.NewMemory()
//	if err := store.Set(ctx, "toastkit:history", payload); err != nil {
//	    // handle error
//	}
//	data, err := store.Get(ctx, "toastkit:history")
//	if errors.Is(err, kv.ErrNotFound) {
//	    // first run, nothing stored yet
//	}
package kv
