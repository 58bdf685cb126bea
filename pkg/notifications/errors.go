package notifications

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidState is returned when a builder is asked to build before it
	// has everything it needs.
	ErrInvalidState = errors.New("notifications: invalid builder state")

	// ErrObserverFailure marks errors raised by an observer during dispatch.
	ErrObserverFailure = errors.New("notifications: observer failed")

	// ErrUnknownChannel is returned for channels other than email and sms.
	ErrUnknownChannel = errors.New("notifications: unknown channel")
)

// ObserverError describes one observer that failed while handling a
// notification. It matches both ErrObserverFailure and the underlying cause
// with errors.Is.
type ObserverError struct {
	Index    int    // position in registration order
	Observer string // observer name, see Named
	Err      error
}

func (e *ObserverError) Error() string {
	return fmt.Sprintf("notifications: observer %s (#%d) failed: %v", e.Observer, e.Index, e.Err)
}

func (e *ObserverError) Unwrap() []error {
	return []error{ErrObserverFailure, e.Err}
}
