package broadcast

import (
	"context"
	"sync"
)

// Message wraps data of type T for type-safe broadcasting.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
type Subscriber[T any] interface {
	// Receive returns the channel broadcast messages arrive on. The channel
	// is closed when the subscriber or its broadcaster is closed. The context
	// parameter exists for interface symmetry with remote adapters; the
	// in-memory implementation does not use it.
	Receive(ctx context.Context) <-chan Message[T]

	// Close closes the subscriber and releases its channel.
	// Close is idempotent.
	Close() error
}

// Broadcaster sends messages to multiple subscribers. Implementations must
// drop messages for slow consumers rather than block the publisher.
type Broadcaster[T any] interface {
	// Subscribe creates a subscriber receiving all subsequent messages.
	// Cancelling ctx tears the subscription down.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast sends a message to all active subscribers.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close shuts the broadcaster down and closes every subscriber.
	Close() error
}

type subscriber[T any] struct {
	ch     chan Message[T]
	closed bool
	mu     sync.RWMutex
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch: make(chan Message[T], bufferSize),
	}
}

func (s *subscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		close(s.ch)
		s.closed = true
	}
	return nil
}

// send delivers msg without blocking. Returns false when the subscriber is
// closed or its buffer is full.
func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
		return false
	}
}
