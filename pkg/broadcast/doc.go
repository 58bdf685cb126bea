// Package broadcast provides a generic in-memory fan-out of messages to any
// number of subscribers.
//
// MemoryBroadcaster never blocks the publisher: each subscriber owns a
// buffered channel and a message that does not fit is dropped for that
// subscriber, which is then unsubscribed. Subscriptions end when their context
// is cancelled, when Close is called on them, or when the broadcaster closes.
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	_ = b.Broadcast(ctx, broadcast.Message[string]{Data: "hello"})
//	msg := <-sub.Receive(ctx)
package broadcast
