package notifications

import "fmt"

// Builder collects notification settings and produces a Notification for a
// chosen channel.
//
// Builder is a value type: every setter returns an updated copy, so a partly
// configured builder can be reused as a template without aliasing.
//
//	n, err := notifications.NewBuilder[string]().
//	    SetContent("Builder Email Alert").
//	    BuildEmailNotification()
type Builder[T any] struct {
	content    T
	hasContent bool
}

func NewBuilder[T any]() Builder[T] {
	return Builder[T]{}
}

// SetContent sets the payload. A zero value is accepted as long as it was set
// explicitly.
func (b Builder[T]) SetContent(content T) Builder[T] {
	b.content = content
	b.hasContent = true
	return b
}

// BuildEmailNotification builds an email notification.
// It fails with ErrInvalidState if SetContent was never called.
func (b Builder[T]) BuildEmailNotification() (Notification[T], error) {
	return b.Build(ChannelEmail)
}

// BuildSMSNotification builds an SMS notification.
// It fails with ErrInvalidState if SetContent was never called.
func (b Builder[T]) BuildSMSNotification() (Notification[T], error) {
	return b.Build(ChannelSMS)
}

// Build builds a notification for ch.
func (b Builder[T]) Build(ch Channel) (Notification[T], error) {
	if !b.hasContent {
		return Notification[T]{}, fmt.Errorf("%w: content is not set", ErrInvalidState)
	}
	f, err := NewFactory[T](ch)
	if err != nil {
		return Notification[T]{}, err
	}
	return f.CreateNotification(b.content), nil
}
