package store

import (
	"context"
	"errors"
	"time"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoPlantStore struct {
	collection *mongo.Collection
}

func (s *mongoPlantStore) Insert(ctx context.Context, plant models.Plant) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, plant)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoPlantStore) List(ctx context.Context, limit int64) ([]models.Plant, error) {
	cursor, err := s.collection.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plants []models.Plant
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

func (s *mongoPlantStore) ListBySeller(ctx context.Context, sellerEmail string) ([]models.Plant, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"seller.email": sellerEmail})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plants []models.Plant
	if err := cursor.All(ctx, &plants); err != nil {
		return nil, err
	}
	return plants, nil
}

func (s *mongoPlantStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Plant, error) {
	var plant models.Plant
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plant)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &plant, nil
}

// updateSetDoc builds the $set document from the fields the request
// actually carried, so a partial body never zeroes the rest.
func updateSetDoc(update models.PlantUpdate) bson.M {
	set := bson.M{"updatedAt": time.Now()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Category != nil {
		set["category"] = *update.Category
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Price != nil {
		set["price"] = *update.Price
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	return set
}

// Update sets the provided allow-listed fields and stamps updatedAt.
// The caller has already verified ownership. Returns the modified
// count so the handler can distinguish a no-op write from a missing
// document.
func (s *mongoPlantStore) Update(ctx context.Context, id primitive.ObjectID, update models.PlantUpdate) (int64, error) {
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateSetDoc(update)})
	if err != nil {
		return 0, err
	}
	if result.MatchedCount == 0 {
		return 0, ErrNotFound
	}
	return result.ModifiedCount, nil
}

// Delete removes the plant only when the embedded seller email matches,
// so ownership is enforced in the same statement as the delete.
func (s *mongoPlantStore) Delete(ctx context.Context, id primitive.ObjectID, sellerEmail string) (int64, error) {
	filter := bson.M{"_id": id, "seller.email": sellerEmail}
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// AdjustQuantity applies a single atomic $inc. There is deliberately no
// floor at zero; the stock level is advisory and may go negative under
// concurrent decrements.
func (s *mongoPlantStore) AdjustQuantity(ctx context.Context, id primitive.ObjectID, delta int) (int64, error) {
	update := bson.M{"$inc": bson.M{"quantity": delta}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

func (s *mongoPlantStore) EstimatedCount(ctx context.Context) (int64, error) {
	return s.collection.EstimatedDocumentCount(ctx)
}
