package usecase

// Pricing carries the deployment's fixed monetary policy: a flat VAT rate,
// a flat shipping cost and the human-facing order number prefix.
type Pricing struct {
	TaxRate      float64
	ShippingCost float64
	OrderPrefix  string
}
