package billing

// Item is a named, priced line entry on an invoice.
type Item struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Invoice groups ordered line items under a single identifier. Items keep
// insertion order and may repeat. TaxRate is a fraction expected to fall in
// [0,1] by convention, unenforced.
type Invoice struct {
	ID      int64   `json:"id"`
	Items   []Item  `json:"items"`
	TaxRate float64 `json:"taxRate"`
}
