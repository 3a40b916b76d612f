// Package store owns every MongoDB access in the system. Handlers talk
// to the interfaces here; main wires the mongo-backed implementations.
package store

import (
	"context"
	"errors"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors handlers translate into HTTP status codes.
var (
	ErrNotFound         = errors.New("document not found")
	ErrAlreadyRequested = errors.New("seller status already requested")
	ErrDelivered        = errors.New("delivered order can't be cancelled")
)

// UserStore persists user documents keyed by email
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user models.User) (primitive.ObjectID, error)
	ListOthers(ctx context.Context, excludeEmail string) ([]models.User, error)
	RequestSellerStatus(ctx context.Context, email string) error
	UpdateRole(ctx context.Context, email, role string) error
	EstimatedCount(ctx context.Context) (int64, error)
}

// PlantStore persists plant documents
type PlantStore interface {
	Insert(ctx context.Context, plant models.Plant) (primitive.ObjectID, error)
	List(ctx context.Context, limit int64) ([]models.Plant, error)
	ListBySeller(ctx context.Context, sellerEmail string) ([]models.Plant, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Plant, error)
	Update(ctx context.Context, id primitive.ObjectID, update models.PlantUpdate) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID, sellerEmail string) (int64, error)
	AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// OrderStore persists order documents and serves the plant-joined views
type OrderStore interface {
	Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	ListByCustomer(ctx context.Context, email string) ([]models.EnrichedOrder, error)
	ListBySeller(ctx context.Context, email string) ([]models.EnrichedOrder, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error)
	DeleteIfNotDelivered(ctx context.Context, id primitive.ObjectID) error
	Totals(ctx context.Context) (orders int64, revenue float64, err error)
	ChartSeries(ctx context.Context) ([]models.ChartPoint, error)
}

// Stores bundles the three collection-backed stores
type Stores struct {
	Users  UserStore
	Plants PlantStore
	Orders OrderStore
}

// New builds mongo-backed stores over the given client and database
func New(client *mongo.Client, dbName string) *Stores {
	db := client.Database(dbName)
	return &Stores{
		Users:  &mongoUserStore{collection: db.Collection("users")},
		Plants: &mongoPlantStore{collection: db.Collection("plants")},
		Orders: &mongoOrderStore{collection: db.Collection("orders")},
	}
}
