package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/marketbridge/notifykit/pkg/logger"
)

// Manager keeps an ordered list of observers and dispatches notifications to
// them synchronously, in registration order.
//
// Observers are referenced, not owned. There is no removal and no replay:
// an observer only sees notifications dispatched after it was registered.
// Manager is safe for concurrent use.
type Manager[T any] struct {
	mu        sync.RWMutex
	observers []Observer[T]
	logger    *slog.Logger
}

type managerConfig struct {
	logger *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*managerConfig)

// WithLogger sets the logger for the Manager.
func WithLogger(l *slog.Logger) ManagerOption {
	return func(c *managerConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewManager creates a manager with no observers.
func NewManager[T any](opts ...ManagerOption) *Manager[T] {
	cfg := &managerConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Manager[T]{
		logger: cfg.logger.With(logger.Component("notifications")),
	}
}

// RegisterObserver appends o to the dispatch list. Registering the same
// observer twice makes it receive every notification twice. Nil is ignored.
func (m *Manager[T]) RegisterObserver(o Observer[T]) {
	if o == nil {
		return
	}
	m.mu.Lock()
	m.observers = append(m.observers, o)
	m.mu.Unlock()
}

// Len returns the number of registered observers.
func (m *Manager[T]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.observers)
}

// NotifyObservers calls Update on every observer registered at the time of
// the call, in registration order.
//
// A failing or panicking observer does not stop the dispatch. Each failure is
// logged and wrapped in an *ObserverError; the returned error joins all of
// them and is nil when every observer succeeded.
func (m *Manager[T]) NotifyObservers(ctx context.Context, n Notification[T]) error {
	// The list is append-only, so the slice header is a stable snapshot.
	m.mu.RLock()
	observers := m.observers
	m.mu.RUnlock()

	var errs []error
	for i, o := range observers {
		if err := m.update(ctx, o, n); err != nil {
			oe := &ObserverError{Index: i, Observer: observerName(o), Err: err}
			m.logger.LogAttrs(ctx, slog.LevelWarn, "observer failed to handle notification",
				logger.NotificationID(n.ID()),
				logger.Channel(n.Channel().String()),
				logger.Observer(oe.Observer, i),
				logger.Error(err),
			)
			errs = append(errs, oe)
		}
	}

	m.logger.LogAttrs(ctx, slog.LevelDebug, "notification dispatched",
		logger.NotificationID(n.ID()),
		logger.Channel(n.Channel().String()),
		logger.Count(len(observers)),
		slog.Int("failed", len(errs)),
	)

	return errors.Join(errs...)
}

func (m *Manager[T]) update(ctx context.Context, o Observer[T], n Notification[T]) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if cause, ok := r.(error); ok {
			err = fmt.Errorf("panic: %w", cause)
			return
		}
		err = fmt.Errorf("panic: %v", r)
	}()
	return o.Update(ctx, n)
}
