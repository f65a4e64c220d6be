package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complykit/toastkit/pkg/kv"
)

func TestMemory_SetGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()

	require.NoError(t, store.Set(ctx, "k", []byte("hello")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)
}

func TestMemory_GetMissing(t *testing.T) {
	t.Parallel()

	store := kv.NewMemory()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestMemory_Overwrite(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()

	require.NoError(t, store.Set(ctx, "k", []byte("one")))
	require.NoError(t, store.Set(ctx, "k", []byte("two")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)
}

func TestMemory_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, kv.ErrNotFound)

	// Deleting a missing key is a no-op.
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestMemory_EmptyKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()

	_, err := store.Get(ctx, "")
	assert.ErrorIs(t, err, kv.ErrEmptyKey)
	assert.ErrorIs(t, store.Set(ctx, "", nil), kv.ErrEmptyKey)
	assert.ErrorIs(t, store.Delete(ctx, ""), kv.ErrEmptyKey)
}

func TestMemory_ValueSizeCeiling(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory(kv.WithMemoryMaxValueSize(4))

	require.NoError(t, store.Set(ctx, "k", []byte("1234")))
	assert.ErrorIs(t, store.Set(ctx, "k", []byte("12345")), kv.ErrValueTooLarge)

	// The previous value survives a rejected write.
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("1234"), got)
}

func TestMemory_ReturnsCopy(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := kv.NewMemory()

	require.NoError(t, store.Set(ctx, "k", []byte("abc")))

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'x'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}
