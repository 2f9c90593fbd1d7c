package discount

// Calculator prices an amount through one injected strategy. New tiers are
// added as new Strategy implementations, never by changing this type.
type Calculator struct {
	Strategy Strategy
}

// Calculate delegates to the configured strategy. A missing strategy leaves
// the amount unchanged.
func (c Calculator) Calculate(amount float64) float64 {
	if c.Strategy == nil {
		return amount
	}
	return c.Strategy.ApplyDiscount(amount)
}
