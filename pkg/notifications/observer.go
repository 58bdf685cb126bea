package notifications

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
)

// Observer is notified of every notification dispatched by the Manager it is
// registered with.
type Observer[T any] interface {
	Update(ctx context.Context, n Notification[T]) error
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc[T any] func(ctx context.Context, n Notification[T]) error

func (f ObserverFunc[T]) Update(ctx context.Context, n Notification[T]) error {
	return f(ctx, n)
}

// Named is implemented by observers that want a readable name in logs and
// in ObserverError.
type Named interface {
	Name() string
}

func observerName(o any) string {
	if n, ok := o.(Named); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", o)
}

// WriterObserver writes each notification's content as one line to an
// io.Writer. It stands in for real delivery.
type WriterObserver[T any] struct {
	name string
	w    io.Writer
	mu   sync.Mutex
}

// NewWriterObserver creates a WriterObserver. A nil writer means os.Stdout.
func NewWriterObserver[T any](name string, w io.Writer) *WriterObserver[T] {
	if w == nil {
		w = os.Stdout
	}
	return &WriterObserver[T]{name: name, w: w}
}

// NewEmailObserver returns the console stand-in for the email channel.
func NewEmailObserver[T any](w io.Writer) *WriterObserver[T] {
	return NewWriterObserver[T]("email", w)
}

// NewSMSObserver returns the console stand-in for the SMS channel.
func NewSMSObserver[T any](w io.Writer) *WriterObserver[T] {
	return NewWriterObserver[T]("sms", w)
}

func (o *WriterObserver[T]) Name() string {
	return o.name
}

func (o *WriterObserver[T]) Update(ctx context.Context, n Notification[T]) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := fmt.Fprintln(o.w, n.Content()); err != nil {
		return fmt.Errorf("write %s notification %s: %w", n.Channel(), n.ID(), err)
	}
	return nil
}
