// Package pricing derives the order totals breakdown from a list of line
// items and an optional validated discount. It is pure: no I/O, no clock.
package pricing

import (
	"math"

	"github.com/brewline/cafe-backend/internal/domain"
)

// TaxRate is fixed and not configurable at runtime.
const TaxRate = 0.13

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals derives subtotal, discount, tax and grand total.
//
// The ordering matters: the discount is clamped to the raw subtotal so it can
// never produce a negative subtotal, and tax is computed on the discounted
// subtotal, not the raw one. Rounding happens exactly where enumerated and
// nowhere else; RawSubtotal stays an unrounded sum of the (already rounded)
// line totals. A nil discount, or an empty cart, yields a zero discount.
func ComputeTotals(items []domain.LineItem, discount *domain.DiscountDescriptor) domain.OrderTotals {
	var rawSubtotal float64
	for _, it := range items {
		rawSubtotal += it.TotalPrice
	}

	var discountAmount float64
	if discount != nil && rawSubtotal > 0 {
		switch discount.Type {
		case domain.DiscountPercent:
			discountAmount = Round2(rawSubtotal * discount.Value / 100)
		case domain.DiscountFixed:
			discountAmount = discount.Value
		}
	}

	discountAmount = math.Min(discountAmount, rawSubtotal)

	subtotal := math.Max(0, rawSubtotal-discountAmount)
	tax := Round2(subtotal * TaxRate)
	grand := Round2(subtotal + tax)

	return domain.OrderTotals{
		RawSubtotal:    rawSubtotal,
		DiscountAmount: discountAmount,
		Subtotal:       subtotal,
		Tax:            tax,
		Grand:          grand,
	}
}
