package notify

import (
	"context"
	"errors"
)

// ErrSenderNotConfigured is returned when a notifier has no sender attached.
var ErrSenderNotConfigured = errors.New("notifier sender not configured")

// Notifier is the high-level entry point for sending messages. It depends on
// the Sender capability only; the concrete channel is injected at
// construction.
type Notifier struct {
	Sender Sender
}

// Send delegates to the injected sender.
func (n Notifier) Send(ctx context.Context, message string) error {
	if n.Sender == nil {
		return ErrSenderNotConfigured
	}
	return n.Sender.Send(ctx, message)
}
