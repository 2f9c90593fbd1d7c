package billing

import (
	"math"
	"testing"
)

func TestTotalWithTax(t *testing.T) {
	calc := Calculator{}
	inv := Invoice{
		ID:      1,
		TaxRate: 0.2,
		Items: []Item{
			{Name: "Laptop", Price: 1000},
			{Name: "Mouse", Price: 50},
		},
	}
	if got := calc.Subtotal(inv); got != 1050 {
		t.Fatalf("expected subtotal 1050, got %v", got)
	}
	if got := calc.Total(inv); math.Abs(got-1260) > 1e-9 {
		t.Fatalf("expected total 1260, got %v", got)
	}
}

func TestTotalEmptyInvoice(t *testing.T) {
	calc := Calculator{}
	for _, rate := range []float64{0, 0.2, 0.75, 1} {
		inv := Invoice{ID: 2, TaxRate: rate}
		if got := calc.Total(inv); got != 0 {
			t.Fatalf("expected total 0 at rate %v, got %v", rate, got)
		}
	}
}

func TestTotalDuplicateItemsKept(t *testing.T) {
	calc := Calculator{}
	inv := Invoice{
		ID:      3,
		TaxRate: 0,
		Items: []Item{
			{Name: "Cable", Price: 10},
			{Name: "Cable", Price: 10},
		},
	}
	if got := calc.Total(inv); got != 20 {
		t.Fatalf("expected total 20, got %v", got)
	}
}
