package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Channel identifies how a notification is meant to reach its recipient.
// Both channels render content the same way; the tag only records origin.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// Valid reports whether c is a supported channel.
func (c Channel) Valid() bool {
	switch c {
	case ChannelEmail, ChannelSMS:
		return true
	default:
		return false
	}
}

func (c Channel) String() string {
	return string(c)
}

// Notification carries a content payload tagged with a channel.
//
// Fields are unexported and there are no setters, so a Notification cannot
// change after a factory or builder creates it. Immutability is shallow: if T
// is a pointer, map or slice, the referenced data is the caller's concern.
type Notification[T any] struct {
	id        string
	channel   Channel
	content   T
	createdAt time.Time
}

// New creates a notification on ch carrying content, with a fresh uuid v4 ID
// and the current time. Factories and the builder validate the channel before
// calling it; New itself accepts any value so callers can tag custom channels.
func New[T any](ch Channel, content T) Notification[T] {
	return Notification[T]{
		id:        uuid.New().String(),
		channel:   ch,
		content:   content,
		createdAt: time.Now(),
	}
}

// ID returns the unique identifier assigned at construction.
func (n Notification[T]) ID() string {
	return n.id
}

func (n Notification[T]) Channel() Channel {
	return n.channel
}

func (n Notification[T]) Content() T {
	return n.content
}

func (n Notification[T]) CreatedAt() time.Time {
	return n.createdAt
}

// IsZero reports whether n was not produced by a factory or builder.
func (n Notification[T]) IsZero() bool {
	return n.id == ""
}
