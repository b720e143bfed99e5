package domain

import "time"

type Product struct {
	ID          string    `json:"_id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Subcategory string    `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Image       string    `json:"image,omitempty" bson:"image,omitempty"`
	Featured    bool      `json:"featured,omitempty" bson:"featured,omitempty"`
	CreatedAt   time.Time `json:"-" bson:"created_at"`
}
