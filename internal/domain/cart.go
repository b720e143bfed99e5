package domain

import "time"

// Customizations holds the per-item options a customer can pick. Empty
// strings mean "not applicable" for that product category.
type Customizations struct {
	Size  string `json:"size,omitempty" bson:"size,omitempty"`
	Milk  string `json:"milk,omitempty" bson:"milk,omitempty"`
	Sugar string `json:"sugar,omitempty" bson:"sugar,omitempty"`
	Heat  string `json:"heat,omitempty" bson:"heat,omitempty"`
}

// LineItem is one product + customization combination in a cart. Key is the
// customization signature; two additions with the same signature collapse
// into one line item. TotalPrice is always UnitPrice * Quantity and is
// recomputed on every mutation.
type LineItem struct {
	Key            string         `json:"key" bson:"key"`
	ProductID      string         `json:"product_id" bson:"product_id"`
	Name           string         `json:"name" bson:"name"`
	UnitPrice      float64        `json:"unit_price" bson:"unit_price"`
	Quantity       int            `json:"quantity" bson:"quantity"`
	TotalPrice     float64        `json:"total_price" bson:"total_price"`
	Customizations Customizations `json:"customizations" bson:"customizations"`
	AddedAt        time.Time      `json:"added_at" bson:"added_at"`
}

// Cart is an authenticated user's cart document.
type Cart struct {
	ID        string     `json:"-" bson:"_id,omitempty"`
	UserID    string     `json:"user_id" bson:"user_id"`
	Items     []LineItem `json:"items" bson:"items"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// Total sums the line totals. It is the figure shown next to the cart badge
// and on the cart page; checkout recomputes the full breakdown via pricing.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.TotalPrice
	}
	return total
}
