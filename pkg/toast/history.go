package toast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/complykit/toastkit/pkg/kv"
)

// History is the bounded ring of dismissed-notification summaries kept in
// durable key-value storage. The whole ring lives as one JSON array under a
// single well-known key, most-recent-last.
type History struct {
	store  kv.Store
	logger *slog.Logger
	mu     sync.Mutex
}

// HistoryOption configures a History.
type HistoryOption func(*History)

// WithHistoryLogger sets the logger for the History.
func WithHistoryLogger(logger *slog.Logger) HistoryOption {
	return func(h *History) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHistory creates a history on top of a durable store.
func NewHistory(store kv.Store, opts ...HistoryOption) *History {
	h := &History{
		store:  store,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Append adds a summary under key, trimming oldest entries first so the
// stored array never exceeds maxEntries. An entry with the same id replaces
// the stored one, keeping ids unique across the archive; this covers records
// that were restored from the history and dismissed again.
func (h *History) Append(ctx context.Context, key string, s Summary, maxEntries int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries, err := h.load(ctx, key)
	if err != nil {
		return err
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.ID != s.ID {
			kept = append(kept, e)
		}
	}
	entries = append(kept, s)
	if maxEntries > 0 && len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("toast: failed to serialize history: %w", err)
	}
	if err := h.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("toast: failed to write history: %w", err)
	}

	return nil
}

// LoadAll returns the stored summaries, oldest first. A missing key yields
// an empty list.
func (h *History) LoadAll(ctx context.Context, key string) ([]Summary, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.load(ctx, key)
}

// Clear drops the stored history under key.
func (h *History) Clear(ctx context.Context, key string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("toast: failed to clear history: %w", err)
	}
	return nil
}

func (h *History) load(ctx context.Context, key string) ([]Summary, error) {
	data, err := h.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("toast: failed to read history: %w", err)
	}

	var entries []Summary
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("toast: failed to decode history: %w", err)
	}

	return entries, nil
}
