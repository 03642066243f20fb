package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_StandardCardCheckout(t *testing.T) {
	cfg := DefaultPricingConfig()
	items := []LineItem{
		{ProductID: "p1", Name: "Monstera Deliciosa", Price: 100, Quantity: 2},
	}

	totals := cfg.Compute(items, PricingOptions{}, PaymentCard)

	assert.Equal(t, 200.00, totals.Subtotal)
	assert.Equal(t, 0.00, totals.BulkDiscount)
	assert.Equal(t, 36.00, totals.Tax)
	assert.Equal(t, 50.00, totals.Shipping)
	assert.Equal(t, 0.00, totals.CODCharge)
	assert.Equal(t, 286.00, totals.Total)
}

func TestCompute_BulkDiscountAndFreeShipping(t *testing.T) {
	cfg := DefaultPricingConfig()
	items := []LineItem{
		{ProductID: "p1", Price: 100, Quantity: 5},
	}
	opts := PricingOptions{FreeShippingOptIn: true, BulkDiscountOptIn: true}

	totals := cfg.Compute(items, opts, PaymentUPI)

	assert.Equal(t, 500.00, totals.Subtotal)
	assert.Equal(t, 50.00, totals.BulkDiscount)
	// Tax applies after the discount.
	assert.Equal(t, 81.00, totals.Tax)
	assert.Equal(t, 0.00, totals.Shipping)
	assert.Equal(t, 531.00, totals.Total)
}

func TestCompute_OptInsWithoutEligibility(t *testing.T) {
	cfg := DefaultPricingConfig()
	items := []LineItem{
		{ProductID: "p1", Price: 100, Quantity: 4},
	}
	opts := PricingOptions{FreeShippingOptIn: true, BulkDiscountOptIn: true}

	totals := cfg.Compute(items, opts, PaymentCard)

	// Quantity under the bulk threshold and subtotal under the free-shipping
	// threshold: neither opt-in changes anything.
	assert.Equal(t, 0.00, totals.BulkDiscount)
	assert.Equal(t, 50.00, totals.Shipping)
	assert.Equal(t, 522.00, totals.Total)
}

func TestCompute_EligibilityWithoutOptIns(t *testing.T) {
	cfg := DefaultPricingConfig()
	items := []LineItem{
		{ProductID: "p1", Price: 200, Quantity: 6},
	}

	totals := cfg.Compute(items, PricingOptions{}, PaymentCard)

	// Meeting the thresholds alone earns nothing without the opt-ins.
	assert.Equal(t, 0.00, totals.BulkDiscount)
	assert.Equal(t, 50.00, totals.Shipping)
}

func TestCompute_CODSurcharge(t *testing.T) {
	cfg := DefaultPricingConfig()
	items := []LineItem{
		{ProductID: "p1", Price: 100, Quantity: 1},
	}

	card := cfg.Compute(items, PricingOptions{}, PaymentCard)
	cod := cfg.Compute(items, PricingOptions{}, PaymentCOD)

	assert.Equal(t, 0.00, card.CODCharge)
	assert.Equal(t, 50.00, cod.CODCharge)
	assert.Equal(t, card.Total+50, cod.Total)
}

func TestCompute_QuantitySumsAcrossLines(t *testing.T) {
	cfg := DefaultPricingConfig()
	items := []LineItem{
		{ProductID: "p1", Price: 50, Quantity: 3},
		{ProductID: "p2", Price: 50, Quantity: 2},
	}

	totals := cfg.Compute(items, PricingOptions{BulkDiscountOptIn: true}, PaymentCard)

	// Five units across two lines qualifies for the bulk discount.
	assert.Equal(t, 250.00, totals.Subtotal)
	assert.Equal(t, 25.00, totals.BulkDiscount)
}

func TestCompute_RoundsToTwoDecimals(t *testing.T) {
	cfg := DefaultPricingConfig()
	items := []LineItem{
		{ProductID: "p1", Price: 33.33, Quantity: 1},
	}

	totals := cfg.Compute(items, PricingOptions{}, PaymentCard)

	require.Equal(t, 33.33, totals.Subtotal)
	assert.Equal(t, 6.00, totals.Tax)
	assert.Equal(t, 89.33, totals.Total)
}

func TestCompute_EmptyCartIsFree(t *testing.T) {
	cfg := DefaultPricingConfig()

	totals := cfg.Compute(nil, PricingOptions{}, PaymentCard)

	assert.Equal(t, 0.00, totals.Subtotal)
	assert.Equal(t, 0.00, totals.Shipping)
	assert.Equal(t, 0.00, totals.Total)
}
