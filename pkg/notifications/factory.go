package notifications

import "fmt"

// Factory creates notifications for a single fixed channel.
type Factory[T any] interface {
	Channel() Channel
	CreateNotification(content T) Notification[T]
}

// EmailFactory creates email notifications. The zero value is ready to use.
type EmailFactory[T any] struct{}

func NewEmailFactory[T any]() EmailFactory[T] {
	return EmailFactory[T]{}
}

func (EmailFactory[T]) Channel() Channel {
	return ChannelEmail
}

func (EmailFactory[T]) CreateNotification(content T) Notification[T] {
	return New(ChannelEmail, content)
}

// SMSFactory creates SMS notifications. The zero value is ready to use.
type SMSFactory[T any] struct{}

func NewSMSFactory[T any]() SMSFactory[T] {
	return SMSFactory[T]{}
}

func (SMSFactory[T]) Channel() Channel {
	return ChannelSMS
}

func (SMSFactory[T]) CreateNotification(content T) Notification[T] {
	return New(ChannelSMS, content)
}

// NewFactory returns the factory for ch, or ErrUnknownChannel.
func NewFactory[T any](ch Channel) (Factory[T], error) {
	switch ch {
	case ChannelEmail:
		return EmailFactory[T]{}, nil
	case ChannelSMS:
		return SMSFactory[T]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, ch)
	}
}
