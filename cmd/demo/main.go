package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/prasetia-dev/solidkit/internal/billing"
	"github.com/prasetia-dev/solidkit/internal/discount"
	"github.com/prasetia-dev/solidkit/internal/notify"
	"github.com/prasetia-dev/solidkit/internal/workforce"
)

func main() {
	out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	logger := zerolog.New(out).With().Timestamp().Logger()
	ctx := context.Background()

	section("single responsibility: invoices")
	inv := billing.Invoice{
		ID:      1,
		TaxRate: 0.2,
		Items: []billing.Item{
			{Name: "Laptop", Price: 1000},
			{Name: "Mouse", Price: 50},
		},
	}
	calc := billing.Calculator{}
	logger.Info().
		Int64("invoice_id", inv.ID).
		Float64("subtotal", calc.Subtotal(inv)).
		Float64("total", calc.Total(inv)).
		Msg("invoice priced")
	repo := billing.Repository{Logger: logger}
	_ = repo.Save(ctx, inv)

	section("open/closed: discount strategies")
	amount := 1000.0
	tiers := []struct {
		name     string
		strategy discount.Strategy
	}{
		{"gold", discount.Gold{}},
		{"platinum", discount.Platinum{}},
	}
	for _, tier := range tiers {
		dc := discount.Calculator{Strategy: tier.strategy}
		logger.Info().
			Str("tier", tier.name).
			Float64("amount", amount).
			Float64("discounted", dc.Calculate(amount)).
			Msg("discount applied")
	}

	section("interface segregation: workers")
	human := workforce.Human{Logger: logger}
	robot := workforce.Robot{Logger: logger}
	runShift(human)
	runShift(robot)
	human.Eat()
	human.Sleep()

	section("dependency inversion: notifications")
	senders := []notify.Sender{
		notify.EmailSender{Logger: logger, From: "noreply@solidkit.local"},
		notify.SMSSender{Logger: logger, From: "SOLIDKIT"},
	}
	for _, sender := range senders {
		n := notify.Notifier{Sender: sender}
		if err := n.Send(ctx, "your order is on its way"); err != nil {
			logger.Error().Err(err).Msg("send notification")
		}
	}
}

// runShift depends only on the Worker capability.
func runShift(w workforce.Worker) {
	w.Work()
}

func section(title string) {
	fmt.Printf("\n== %s ==\n", title)
}
