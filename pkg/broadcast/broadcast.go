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
// Implementations must be safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel messages arrive on. It is closed when the
	// subscription ends, including when ctx is cancelled.
	Receive(ctx context.Context) <-chan Message[T]

	// Close ends the subscription. It is idempotent.
	Close() error
}

// Broadcaster sends messages to multiple subscribers.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber that lives until ctx is cancelled or
	// it is closed.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast sends msg to every active subscriber without blocking.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

// subscriber is a buffered channel guarded so that send never races Close.
type subscriber[T any] struct {
	mu     sync.RWMutex
	ch     chan Message[T]
	done   chan struct{}
	closed bool
	watch  sync.Once
}

func newSubscriber[T any](bufferSize int) *subscriber[T] {
	return &subscriber[T]{
		ch:   make(chan Message[T], bufferSize),
		done: make(chan struct{}),
	}
}

// Receive returns the message channel. A ctx that is already done closes the
// subscriber; the first cancellable ctx passed in is watched and closes the
// subscriber when it ends. The broadcaster drops closed subscribers on its
// next Broadcast.
func (s *subscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	if ctx == nil || ctx.Done() == nil {
		return s.ch
	}
	if ctx.Err() != nil {
		_ = s.Close()
		return s.ch
	}

	s.watch.Do(func() {
		go func() {
			select {
			case <-ctx.Done():
				_ = s.Close()
			case <-s.done:
			}
		}()
	})
	return s.ch
}

func (s *subscriber[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	close(s.ch)
	return nil
}

// send reports false when the subscriber is closed or its buffer is full.
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
