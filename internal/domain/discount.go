package domain

// Discount kinds as stored in the discounts collection.
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// DiscountDescriptor is the effect of a validated promo code. It is applied
// transiently to a totals computation and never persisted on the cart.
type DiscountDescriptor struct {
	Code         string  `json:"code" bson:"code"`
	Type         string  `json:"type" bson:"type"`
	Value        float64 `json:"value" bson:"value"`
	MinCartTotal float64 `json:"minCartTotal,omitempty" bson:"min_cart_total,omitempty"`
	Active       bool    `json:"-" bson:"active"`
}
