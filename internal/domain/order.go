package domain

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPreparing      OrderStatus = "Preparing"
	OrderStatusOutForDelivery OrderStatus = "On The Way"
	OrderStatusDelivered      OrderStatus = "Delivered"
)

// OrderTotals is the derived pricing breakdown for a cart. RawSubtotal is the
// unrounded sum of line totals; every other field is rounded to 2 decimals at
// the point of computation.
type OrderTotals struct {
	RawSubtotal    float64 `json:"raw_subtotal"`
	DiscountAmount float64 `json:"discount"`
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	Grand          float64 `json:"grand"`
}

type OrderItem struct {
	ProductID      string         `json:"product_id"`
	Name           string         `json:"name"`
	Quantity       int            `json:"quantity"`
	UnitPrice      float64        `json:"unit_price"`
	TotalPrice     float64        `json:"total_price"`
	Customizations Customizations `json:"customizations"`
}

type Order struct {
	ID            uuid.UUID   `json:"id"`
	OrderNumber   string      `json:"orderNumber"`
	UserID        string      `json:"user_id"`
	Items         []OrderItem `json:"items"`
	Totals        OrderTotals `json:"totals"`
	DeliveryNotes string      `json:"deliveryNotes,omitempty"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
	DeliveredAt   *time.Time  `json:"deliveredAt,omitempty"`
}
