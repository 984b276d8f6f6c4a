package checkout

import (
	"github.com/etorres-dev/modernstore-backend/pkg/config"
	"github.com/shopspring/decimal"
)

// Totals breaks an order amount into its displayed parts. All values
// are cents.
type Totals struct {
	SubtotalCents int `json:"subtotal_cents"`
	ShippingCents int `json:"shipping_cents"`
	TaxCents      int `json:"tax_cents"`
	TotalCents    int `json:"total_cents"`
}

// Total returns the order total in dollars.
func (t Totals) Total() decimal.Decimal {
	return decimal.NewFromInt(int64(t.TotalCents)).Shift(-2)
}

// ComputeTotals derives shipping and tax from the cart subtotal.
// Shipping is free at or above the configured threshold; tax is the
// configured rate rounded to the cent.
func ComputeTotals(subtotalCents int, cfg config.CheckoutConfig) Totals {
	shipping := cfg.ShippingFeeCents
	if subtotalCents >= cfg.FreeShippingThresholdCents {
		shipping = 0
	}

	tax := int(decimal.NewFromInt(int64(subtotalCents)).
		Mul(decimal.NewFromFloat(cfg.TaxRate)).
		Round(0).
		IntPart())

	return Totals{
		SubtotalCents: subtotalCents,
		ShippingCents: shipping,
		TaxCents:      tax,
		TotalCents:    subtotalCents + shipping + tax,
	}
}
