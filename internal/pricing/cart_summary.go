package pricing

import (
	"github.com/shopspring/decimal"
)

// ProductSnapshot is the partial product view the cart math needs.
// Prices arrive as decimal strings from the backend; they are never
// re-parsed into floats.
type ProductSnapshot struct {
	Price          string `json:"price"`
	CompareAtPrice string `json:"compare_at_price,omitempty"`
}

// LineItem is one cart row: a product snapshot plus a requested quantity.
type LineItem struct {
	ProductID int64            `json:"product_id,omitempty"`
	Product   *ProductSnapshot `json:"product,omitempty"`
	Quantity  int64            `json:"quantity"`
}

// Summary is the price breakdown for a cart. Derived, never persisted.
type Summary struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Policy controls shipping and tax. The waive flags exist so the zero
// shipping/tax campaign can be switched off by configuration instead of
// editing the rate values.
type Policy struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
	TaxRate               decimal.Decimal
	ShippingWaived        bool
	TaxWaived             bool
}

// StandardPolicy is free shipping above 1000, otherwise a flat 100 fee,
// with 5% tax on the subtotal.
func StandardPolicy() Policy {
	return Policy{
		FreeShippingThreshold: decimal.NewFromInt(1000),
		FlatShippingFee:       decimal.NewFromInt(100),
		TaxRate:               decimal.RequireFromString("0.05"),
	}
}

// CurrentPolicy is the standard policy with shipping and tax waived.
// Temporary override while both are charged outside this system.
func CurrentPolicy() Policy {
	p := StandardPolicy()
	p.ShippingWaived = true
	p.TaxWaived = true
	return p
}

// Summarize turns cart line items into a price breakdown.
// A nil or empty item list yields the all-zero summary. A missing or
// unparseable price counts as zero, as does a negative quantity, so bad
// rows degrade to zero instead of failing the whole cart.
// Pure: no I/O, no shared state, safe to call on every render.
func Summarize(items []LineItem, p Policy) Summary {
	subtotal := decimal.Zero

	for _, it := range items {
		if it.Product == nil || it.Quantity <= 0 {
			continue
		}
		price, err := decimal.NewFromString(it.Product.Price)
		if err != nil || price.IsNegative() {
			continue
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(it.Quantity)))
	}

	shipping := decimal.Zero
	if !p.ShippingWaived && subtotal.IsPositive() && subtotal.LessThan(p.FreeShippingThreshold) {
		shipping = p.FlatShippingFee
	}

	tax := decimal.Zero
	if !p.TaxWaived {
		tax = subtotal.Mul(p.TaxRate).Round(2)
	}

	return Summary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// SavingsPercent returns the discount percentage of current against the
// compare-at price, rounded to the nearest integer. An absent, zero or
// unparseable compare-at price means no discount to show, so 0.
func SavingsPercent(current string, compareAt string) int64 {
	if compareAt == "" {
		return 0
	}
	cur, err := decimal.NewFromString(current)
	if err != nil {
		return 0
	}
	orig, err := decimal.NewFromString(compareAt)
	if err != nil || orig.IsZero() {
		return 0
	}

	ratio := cur.Div(orig)
	return decimal.NewFromInt(1).Sub(ratio).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}
