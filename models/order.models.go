package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusDelivered is the only order status the server interprets: a
// delivered order can no longer be cancelled. Everything else is a
// caller-defined workflow marker.
const StatusDelivered = "Delivered"

// Customer is the buyer sub-document embedded in an order
type Customer struct {
	Email   string `bson:"email" json:"email"`
	Name    string `bson:"name,omitempty" json:"name,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`
}

// Order represents a placed order. PlantID is stored as the hex string
// the client sends; the customer-order listings convert it back to an
// ObjectID when joining against the plants collection.
type Order struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Customer Customer           `bson:"customer" json:"customer"`
	Seller   string             `bson:"seller" json:"seller"`
	PlantID  string             `bson:"plantId" json:"plantId"`
	Quantity int                `bson:"quantity" json:"quantity"`
	Price    float64            `bson:"price" json:"price"`
	Status   string             `bson:"status,omitempty" json:"status,omitempty"`
}

// EnrichedOrder is an order joined with fields from its plant, as
// returned by the customer and seller order listings.
type EnrichedOrder struct {
	Order         `bson:",inline"`
	PlantName     string `bson:"plantName,omitempty" json:"plantName,omitempty"`
	PlantImage    string `bson:"plantImage,omitempty" json:"plantImage,omitempty"`
	PlantQuantity int    `bson:"plantQuantity,omitempty" json:"plantQuantity,omitempty"`
}
