package billing

import (
	"context"

	"github.com/rs/zerolog"
)

// Repository stands in for invoice persistence. Save only emits a
// confirmation; no datastore sits behind it.
type Repository struct {
	Logger zerolog.Logger
}

// Save records a confirmation for the invoice and reports success.
func (r Repository) Save(_ context.Context, inv Invoice) error {
	r.Logger.Info().
		Int64("invoice_id", inv.ID).
		Int("items", len(inv.Items)).
		Msg("invoice saved")
	return nil
}
