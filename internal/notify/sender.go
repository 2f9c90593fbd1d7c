package notify

import (
	"context"

	"github.com/rs/zerolog"
)

// Sender delivers a message over one concrete channel.
type Sender interface {
	Send(ctx context.Context, message string) error
}

// EmailSender delivers messages over email. Delivery is simulated with a
// channel-tagged confirmation.
type EmailSender struct {
	Logger zerolog.Logger
	From   string
}

// Send emits an email-tagged confirmation for the message.
func (s EmailSender) Send(_ context.Context, message string) error {
	s.Logger.Info().
		Str("channel", "email").
		Str("from", s.From).
		Str("message", message).
		Msg("notification sent")
	return nil
}

// SMSSender delivers messages over SMS, simulated the same way.
type SMSSender struct {
	Logger zerolog.Logger
	From   string
}

// Send emits an sms-tagged confirmation for the message.
func (s SMSSender) Send(_ context.Context, message string) error {
	s.Logger.Info().
		Str("channel", "sms").
		Str("from", s.From).
		Str("message", message).
		Msg("notification sent")
	return nil
}
