package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complykit/toastkit/pkg/broadcast"
)

func TestMemoryBroadcaster_Fanout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := broadcast.NewMemoryBroadcaster[int](4)
	defer b.Close()

	sub1 := b.Subscribe(ctx)
	sub2 := b.Subscribe(ctx)

	require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 42}))

	select {
	case msg := <-sub1.Receive(ctx):
		assert.Equal(t, 42, msg.Data)
	case <-time.After(time.Second):
		t.Fatal("sub1 did not receive message")
	}

	select {
	case msg := <-sub2.Receive(ctx):
		assert.Equal(t, 42, msg.Data)
	case <-time.After(time.Second):
		t.Fatal("sub2 did not receive message")
	}
}

func TestMemoryBroadcaster_SlowConsumerDropped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := broadcast.NewMemoryBroadcaster[int](1)
	defer b.Close()

	sub := b.Subscribe(ctx)

	// First message fills the buffer, second overflows and is dropped.
	require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 1}))
	require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 2}))

	msg := <-sub.Receive(ctx)
	assert.Equal(t, 1, msg.Data)
}

func TestMemoryBroadcaster_SubscribeAfterClose(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	b := broadcast.NewMemoryBroadcaster[string](1)
	require.NoError(t, b.Close())

	sub := b.Subscribe(ctx)

	_, open := <-sub.Receive(ctx)
	assert.False(t, open, "subscriber channel should be closed")
}

func TestMemoryBroadcaster_CloseIdempotent(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemoryBroadcaster[string](1)
	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
}

func TestMemoryBroadcaster_ContextCancelUnsubscribes(t *testing.T) {
	t.Parallel()

	b := broadcast.NewMemoryBroadcaster[int](1)
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := b.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case _, open := <-sub.Receive(context.Background()):
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond, "subscriber should be closed after context cancel")
}
