package models

import "time"

// Price item categories.
const (
	PriceItemFurniture = "furniture"
	PriceItemAppliance = "appliance"
)

// PriceItem is one entry of the priced furniture/appliance catalog.
type PriceItem struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Category  string    `bson:"category" json:"category"`
	Price     float64   `bson:"price" json:"price"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}
