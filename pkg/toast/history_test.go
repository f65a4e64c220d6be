package toast

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complykit/toastkit/pkg/kv"
)

const testKey = "toastkit:history"

func summary(id string) Summary {
	return Summary{ID: id, Kind: KindInfo, Message: "m", CreatedAt: time.Now()}
}

func TestHistory_AppendAndLoad(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHistory(kv.NewMemory())

	require.NoError(t, h.Append(ctx, testKey, summary("a"), 10))
	require.NoError(t, h.Append(ctx, testKey, summary("b"), 10))

	entries, err := h.LoadAll(ctx, testKey)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)
}

func TestHistory_BoundTrimsOldest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHistory(kv.NewMemory())

	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, h.Append(ctx, testKey, summary(id), 3))
	}

	entries, err := h.LoadAll(ctx, testKey)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "c", entries[1].ID)
	assert.Equal(t, "d", entries[2].ID)
}

func TestHistory_AppendReplacesSameID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHistory(kv.NewMemory())

	require.NoError(t, h.Append(ctx, testKey, summary("a"), 10))
	require.NoError(t, h.Append(ctx, testKey, summary("b"), 10))

	s := summary("a")
	s.Message = "dismissed again"
	require.NoError(t, h.Append(ctx, testKey, s, 10))

	entries, err := h.LoadAll(ctx, testKey)
	require.NoError(t, err)
	require.Len(t, entries, 2, "ids must stay unique across the archive")
	assert.Equal(t, "b", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)
	assert.Equal(t, "dismissed again", entries[1].Message)
}

func TestHistory_LoadAllEmpty(t *testing.T) {
	t.Parallel()

	h := NewHistory(kv.NewMemory())

	entries, err := h.LoadAll(context.Background(), testKey)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistory_Clear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHistory(kv.NewMemory())

	require.NoError(t, h.Append(ctx, testKey, summary("a"), 10))
	require.NoError(t, h.Clear(ctx, testKey))

	entries, err := h.LoadAll(ctx, testKey)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// failingStore simulates quota-exceeded style write failures.
type failingStore struct {
	kv.Store
	setErr error
}

func (f *failingStore) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.Store.Set(ctx, key, value)
}

func TestHistory_WriteFailureSurfacesError(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	boom := errors.New("quota exceeded")
	h := NewHistory(&failingStore{Store: kv.NewMemory(), setErr: boom})

	err := h.Append(ctx, testKey, summary("a"), 10)
	assert.ErrorIs(t, err, boom)
}

func TestHistory_CorruptPayload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()
	require.NoError(t, store.Set(ctx, testKey, []byte("not json")))

	h := NewHistory(store)
	_, err := h.LoadAll(ctx, testKey)
	assert.Error(t, err)
}

func TestHistory_DataRoundTrips(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	h := NewHistory(kv.NewMemory())

	s := summary("a")
	s.Data = map[string]any{"document_id": "doc-7"}
	require.NoError(t, h.Append(ctx, testKey, s, 10))

	entries, err := h.LoadAll(ctx, testKey)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "doc-7", entries[0].Data["document_id"])
}
