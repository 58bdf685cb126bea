package notifications

import (
	"context"

	"github.com/marketbridge/notifykit/pkg/broadcast"
)

// BroadcastObserver forwards notifications to a broadcaster so goroutines
// outside the dispatch path can consume them.
//
// Delivery to subscribers is non-blocking; slow subscribers miss messages
// rather than stalling dispatch.
type BroadcastObserver[T any] struct {
	b broadcast.Broadcaster[Notification[T]]
}

func NewBroadcastObserver[T any](b broadcast.Broadcaster[Notification[T]]) *BroadcastObserver[T] {
	return &BroadcastObserver[T]{b: b}
}

func (o *BroadcastObserver[T]) Name() string {
	return "broadcast"
}

// Update returns broadcast.ErrClosed once the broadcaster is closed.
func (o *BroadcastObserver[T]) Update(ctx context.Context, n Notification[T]) error {
	return o.b.Broadcast(ctx, broadcast.Message[Notification[T]]{Data: n})
}
