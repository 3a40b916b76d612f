package store

import (
	"context"
	"errors"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoUserStore struct {
	collection *mongo.Collection
}

func (s *mongoUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *mongoUserStore) Insert(ctx context.Context, user models.User) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, user)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoUserStore) ListOthers(ctx context.Context, excludeEmail string) ([]models.User, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"email": bson.M{"$ne": excludeEmail}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// RequestSellerStatus flips status to "Requested" with a single
// conditional update so two concurrent requests cannot both succeed.
func (s *mongoUserStore) RequestSellerStatus(ctx context.Context, email string) error {
	filter := bson.M{
		"email":  email,
		"status": bson.M{"$ne": models.StatusRequested},
	}
	update := bson.M{"$set": bson.M{"status": models.StatusRequested}}

	result, err := s.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		// Either the user is missing or already in Requested state.
		count, err := s.collection.CountDocuments(ctx, bson.M{"email": email})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrAlreadyRequested
	}
	return nil
}

// UpdateRole sets the role and unconditionally marks the user Verified.
func (s *mongoUserStore) UpdateRole(ctx context.Context, email, role string) error {
	update := bson.M{"$set": bson.M{
		"role":   role,
		"status": models.StatusVerified,
	}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"email": email}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoUserStore) EstimatedCount(ctx context.Context) (int64, error) {
	return s.collection.EstimatedDocumentCount(ctx)
}
