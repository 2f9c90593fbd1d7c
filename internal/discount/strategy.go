package discount

import (
	"errors"
	"strings"
)

// ErrUnknownTier is returned when a tier name has no registered strategy.
var ErrUnknownTier = errors.New("unknown discount tier")

// Strategy applies a membership-tier discount to an amount.
type Strategy interface {
	ApplyDiscount(amount float64) float64
}

// Regular applies no discount.
type Regular struct{}

// ApplyDiscount returns the amount unchanged.
func (Regular) ApplyDiscount(amount float64) float64 { return amount }

// Silver takes 10% off.
type Silver struct{}

// ApplyDiscount returns 90% of the amount.
func (Silver) ApplyDiscount(amount float64) float64 { return amount * 0.9 }

// Gold takes 20% off.
type Gold struct{}

// ApplyDiscount returns 80% of the amount.
func (Gold) ApplyDiscount(amount float64) float64 { return amount * 0.8 }

// Platinum takes 30% off.
type Platinum struct{}

// ApplyDiscount returns 70% of the amount.
func (Platinum) ApplyDiscount(amount float64) float64 { return amount * 0.7 }

// ForTier resolves a tier name to its strategy.
func ForTier(tier string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(tier)) {
	case "regular":
		return Regular{}, nil
	case "silver":
		return Silver{}, nil
	case "gold":
		return Gold{}, nil
	case "platinum":
		return Platinum{}, nil
	default:
		return nil, ErrUnknownTier
	}
}
