package billing

// Calculator computes invoice totals. It lives apart from Invoice so the
// aggregate has no reason to change when total rules do.
type Calculator struct{}

// Subtotal sums the item prices. A nil item slice counts as empty.
func (Calculator) Subtotal(inv Invoice) float64 {
	var subtotal float64
	for _, item := range inv.Items {
		subtotal += item.Price
	}
	return subtotal
}

// Total returns the subtotal plus tax at the invoice rate.
func (c Calculator) Total(inv Invoice) float64 {
	subtotal := c.Subtotal(inv)
	return subtotal + subtotal*inv.TaxRate
}
