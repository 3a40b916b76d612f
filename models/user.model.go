package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user document can carry. Every registration starts as customer;
// only the admin role-update endpoint moves a user off it.
const (
	RoleCustomer = "customer"
	RoleSeller   = "seller"
	RoleAdmin    = "admin"
)

// Seller-upgrade workflow markers for User.Status.
const (
	StatusRequested = "Requested"
	StatusVerified  = "Verified"
)

// User represents a user in the system, keyed by email
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	Email     string             `bson:"email" json:"email"`
	Image     string             `bson:"image,omitempty" json:"image,omitempty"`
	Role      string             `bson:"role" json:"role"` // "customer", "seller" or "admin"
	Status    string             `bson:"status,omitempty" json:"status,omitempty"`
	TimeStamp int64              `bson:"timeStamp,omitempty" json:"timeStamp,omitempty"`
}
