// Package pricing holds the pure money math. No side effects, no store
// access; all values are decimals and display rounding happens at the
// presentation boundary, not here.
package pricing

import (
	"github.com/shopspring/decimal"

	"shopcore/internal/model"
)

var (
	hundred           = decimal.NewFromInt(100)
	freeShippingAbove = decimal.NewFromInt(500)
	flatShippingFee   = decimal.NewFromInt(25)
)

// DiscountPercent returns the discount badge value for a price pair, rounded
// to the nearest integer. Zero when originalPrice is absent or not above
// price.
func DiscountPercent(price decimal.Decimal, originalPrice *decimal.Decimal) decimal.Decimal {
	if originalPrice == nil || originalPrice.LessThanOrEqual(price) || originalPrice.IsZero() {
		return decimal.Zero
	}
	diff := originalPrice.Sub(price)
	return diff.Mul(hundred).Div(*originalPrice).Round(0)
}

// CartTotal sums price x quantity over all items, unrounded.
func CartTotal(items []model.CartItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// ShippingFee is 0 for an empty cart or a subtotal above 500, else a flat 25.
func ShippingFee(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() || subtotal.GreaterThan(freeShippingAbove) {
		return decimal.Zero
	}
	return flatShippingFee
}

// OrderTotal is the checkout total: subtotal plus shipping.
func OrderTotal(items []model.CartItem) decimal.Decimal {
	subtotal := CartTotal(items)
	return subtotal.Add(ShippingFee(subtotal))
}
