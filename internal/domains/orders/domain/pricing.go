package domain

import "math"

// PricingConfig carries the storefront pricing constants. Values come from
// configuration, not call sites.
type PricingConfig struct {
	TaxRate               float64
	ShippingFee           float64
	FreeShippingThreshold float64
	BulkDiscountRate      float64
	BulkDiscountMinQty    int
	CODCharge             float64
}

// DefaultPricingConfig mirrors the storefront defaults.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		TaxRate:               0.18,
		ShippingFee:           50,
		FreeShippingThreshold: 500,
		BulkDiscountRate:      0.10,
		BulkDiscountMinQty:    5,
		CODCharge:             50,
	}
}

// Totals is the priced breakdown of an order, computed once at creation.
type Totals struct {
	Subtotal     float64
	BulkDiscount float64
	Tax          float64
	Shipping     float64
	CODCharge    float64
	Total        float64
}

// PricingOptions are the customer-chosen toggles that affect pricing.
type PricingOptions struct {
	FreeShippingOptIn bool
	BulkDiscountOptIn bool
}

// Compute prices the given line items:
// subtotal from server-trusted prices, bulk discount when opted in and the
// total quantity meets the threshold, tax on (subtotal - discount), flat
// shipping unless the free-shipping opt-in applies, plus a COD surcharge.
// Every component is rounded to two decimal places.
func (c PricingConfig) Compute(items []LineItem, opts PricingOptions, method PaymentMethod) Totals {
	var subtotal float64
	var quantity int
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		quantity += item.Quantity
	}
	subtotal = round2(subtotal)

	var discount float64
	if opts.BulkDiscountOptIn && quantity >= c.BulkDiscountMinQty {
		discount = round2(subtotal * c.BulkDiscountRate)
	}

	tax := round2((subtotal - discount) * c.TaxRate)

	var shipping float64
	if subtotal > 0 {
		shipping = c.ShippingFee
		if opts.FreeShippingOptIn && subtotal >= c.FreeShippingThreshold {
			shipping = 0
		}
	}

	var cod float64
	if method == PaymentCOD {
		cod = c.CODCharge
	}

	return Totals{
		Subtotal:     subtotal,
		BulkDiscount: discount,
		Tax:          tax,
		Shipping:     shipping,
		CODCharge:    cod,
		Total:        round2(subtotal - discount + tax + shipping + cod),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
