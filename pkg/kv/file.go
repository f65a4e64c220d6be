package kv

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// File is a file-backed implementation of the Store interface.
// Each key is stored as one file in a directory; writes go through a
// temporary file and rename so readers never observe partial content.
type File struct {
	dir      string
	maxValue int
	mu       sync.RWMutex
}

// FileOption configures a File store.
type FileOption func(*File)

// WithFileMaxValueSize sets a per-value size ceiling in bytes.
// Zero or negative values disable the ceiling.
func WithFileMaxValueSize(n int) FileOption {
	return func(f *File) {
		f.maxValue = n
	}
}

// NewFile creates a file-backed store rooted at dir, creating the directory
// if it does not exist.
func NewFile(dir string, opts ...FileOption) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("kv: failed to create store directory: %w", err)
	}

	f := &File{dir: dir}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("kv: failed to read key %q: %w", key, err)
	}

	return data, nil
}

func (f *File) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return ErrEmptyKey
	}
	if f.maxValue > 0 && len(value) > f.maxValue {
		return ErrValueTooLarge
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	path := f.path(key)
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("kv: failed to write key %q: %w", key, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("kv: failed to commit key %q: %w", key, err)
	}

	return nil
}

func (f *File) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.Remove(f.path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("kv: failed to delete key %q: %w", key, err)
	}

	return nil
}

// path maps a key to a filename. Keys are hex-encoded so arbitrary key
// strings cannot escape the store directory.
func (f *File) path(key string) string {
	return filepath.Join(f.dir, hex.EncodeToString([]byte(key))+".kv")
}
