package domain

import "time"

type User struct {
	ID           string           `json:"id" bson:"_id,omitempty"`
	Email        string           `json:"email" bson:"email"`
	Name         string           `json:"name" bson:"name"`
	PasswordHash string           `json:"-" bson:"password_hash"`
	Address      *DeliveryAddress `json:"deliveryAddress,omitempty" bson:"delivery_address,omitempty"`
	CreatedAt    time.Time        `json:"-" bson:"created_at"`
}

// DeliveryAddress mirrors the shape the client persists for guests and the
// account stores for signed-in users.
type DeliveryAddress struct {
	DisplayAddress string    `json:"displayAddress" bson:"display_address"`
	ExtraNotes     string    `json:"extraNotes,omitempty" bson:"extra_notes,omitempty"`
	Lat            *float64  `json:"lat,omitempty" bson:"lat,omitempty"`
	Lng            *float64  `json:"lng,omitempty" bson:"lng,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updated_at"`
}

type Review struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"-" bson:"user_id"`
	Username  string    `json:"username" bson:"username"`
	Rating    int       `json:"rating" bson:"rating"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
