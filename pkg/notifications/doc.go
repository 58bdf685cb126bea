// Package notifications builds channel-tagged notifications and dispatches
// them to registered observers.
//
// # Architecture
//
//   - Notification: immutable value holding a content payload of any type T
//     and a Channel (email or sms). Each one gets a uuid and creation time.
//   - Factory: creates notifications for one fixed channel (EmailFactory,
//     SMSFactory, or NewFactory to pick by channel).
//   - Builder: chained configuration that builds a notification for a chosen
//     channel. Building without content fails with ErrInvalidState.
//   - Observer: anything with Update(ctx, Notification[T]) error.
//   - Manager: ordered observer list with synchronous fan-out.
//
// # Basic Usage
//
//	manager := notifications.NewManager[string]()
//	manager.RegisterObserver(notifications.NewEmailObserver[string](os.Stdout))
//	manager.RegisterObserver(notifications.NewSMSObserver[string](os.Stdout))
//
//	welcome := notifications.NewEmailFactory[string]().
//	    CreateNotification("Welcome to MarketBridge!")
//	if err := manager.NotifyObservers(ctx, welcome); err != nil {
//	    // one or more observers failed
//	}
//
// # Dispatch Semantics
//
// Observers run one after another in the order they were registered. The
// same observer registered twice runs twice. A failing observer does not stop
// the others: NotifyObservers keeps going and returns every failure joined
// together. Each failure is an *ObserverError, so callers can inspect it:
//
//	var oe *notifications.ObserverError
//	if errors.As(err, &oe) {
//	    log.Printf("observer %s failed: %v", oe.Observer, oe.Err)
//	}
//
// Panics inside an observer are recovered and reported the same way.
//
// # Fan-out to Goroutines
//
// BroadcastObserver forwards every notification into a
// broadcast.Broadcaster, letting other goroutines subscribe without blocking
// dispatch.
package notifications
