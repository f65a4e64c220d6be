package kv

import (
	"context"
	"sync"
)

// Memory is an in-memory implementation of the Store interface.
// Suitable for development and testing.
type Memory struct {
	values   map[string][]byte
	maxValue int
	mu       sync.RWMutex
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithMemoryMaxValueSize sets a per-value size ceiling in bytes.
// Zero or negative values disable the ceiling.
func WithMemoryMaxValueSize(n int) MemoryOption {
	return func(m *Memory) {
		m.maxValue = n
	}
}

// NewMemory creates a new in-memory key-value store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		values: make(map[string][]byte),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}

	// Return a copy to prevent external mutation of stored data
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if m.maxValue > 0 && len(value) > m.maxValue {
		return ErrValueTooLarge
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[key] = stored
	return nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}
