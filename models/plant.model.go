package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Seller is the owner sub-document embedded in a plant
type Seller struct {
	Email string `bson:"email" json:"email"`
	Name  string `bson:"name,omitempty" json:"name,omitempty"`
}

// Plant represents a catalog entry owned by a seller
type Plant struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Category    string             `bson:"category" json:"category"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	Seller      Seller             `bson:"seller" json:"seller"`
	UpdatedAt   time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// PlantUpdate carries the fields a seller is allowed to change on an
// existing plant. Anything else in the request body is ignored. Fields
// are pointers so a partial PATCH body only touches the fields it
// names; omitted fields stay nil and are left alone by the write.
type PlantUpdate struct {
	Name        *string  `json:"name"`
	Category    *string  `json:"category"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Quantity    *int     `json:"quantity"`
	Image       *string  `json:"image"`
}
