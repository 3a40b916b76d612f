package store

import (
	"context"

	"plantnet/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoOrderStore struct {
	collection *mongo.Collection
}

func (s *mongoOrderStore) Insert(ctx context.Context, order models.Order) (primitive.ObjectID, error) {
	result, err := s.collection.InsertOne(ctx, order)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return result.InsertedID.(primitive.ObjectID), nil
}

func (s *mongoOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// plantJoinPipeline matches orders on the given filter and joins each
// one to its plant. Orders store plantId as a hex string, so the join
// goes through a temporary ObjectID field that is projected back out.
func plantJoinPipeline(match bson.M, enrich bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"plantObjectId": bson.M{"$toObjectId": "$plantId"},
		}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "plants",
			"localField":   "plantObjectId",
			"foreignField": "_id",
			"as":           "plants",
		}}},
		bson.D{{Key: "$unwind", Value: "$plants"}},
		bson.D{{Key: "$addFields", Value: enrich}},
		bson.D{{Key: "$project", Value: bson.M{
			"plants":        0,
			"plantObjectId": 0,
		}}},
	}
}

func (s *mongoOrderStore) aggregateEnriched(ctx context.Context, pipeline mongo.Pipeline) ([]models.EnrichedOrder, error) {
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.EnrichedOrder
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *mongoOrderStore) ListByCustomer(ctx context.Context, email string) ([]models.EnrichedOrder, error) {
	pipeline := plantJoinPipeline(
		bson.M{"customer.email": email},
		bson.M{
			"plantName":     "$plants.name",
			"plantImage":    "$plants.image",
			"plantQuantity": "$plants.quantity",
		},
	)
	return s.aggregateEnriched(ctx, pipeline)
}

func (s *mongoOrderStore) ListBySeller(ctx context.Context, email string) ([]models.EnrichedOrder, error) {
	pipeline := plantJoinPipeline(
		bson.M{"seller": email},
		bson.M{"plantName": "$plants.name"},
	)
	return s.aggregateEnriched(ctx, pipeline)
}

func (s *mongoOrderStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (int64, error) {
	update := bson.M{"$set": bson.M{"status": status}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return 0, err
	}
	return result.MatchedCount, nil
}

// DeleteIfNotDelivered removes the order with a single conditional
// delete; the status guard rides in the filter so a concurrent update
// to Delivered cannot slip between a read and the delete. The follow-up
// read only classifies the zero-deleted case.
func (s *mongoOrderStore) DeleteIfNotDelivered(ctx context.Context, id primitive.ObjectID) error {
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$ne": models.StatusDelivered},
	}
	result, err := s.collection.DeleteOne(ctx, filter)
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		count, err := s.collection.CountDocuments(ctx, bson.M{"_id": id})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrDelivered
	}
	return nil
}

func (s *mongoOrderStore) Totals(ctx context.Context) (int64, float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalOrders":  bson.M{"$sum": 1},
			"totalRevenue": bson.M{"$sum": "$price"},
		}}},
	}
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var totals []struct {
		TotalOrders  int64   `bson:"totalOrders"`
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &totals); err != nil {
		return 0, 0, err
	}
	if len(totals) == 0 {
		return 0, 0, nil
	}
	return totals[0].TotalOrders, totals[0].TotalRevenue, nil
}

// ChartSeries buckets orders per day. The bucket date is derived from
// the ObjectID's embedded timestamp; orders carry no placed-at field.
func (s *mongoOrderStore) ChartSeries(ctx context.Context) ([]models.ChartPoint, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id": bson.M{"$dateToString": bson.M{
				"format": "%Y-%m-%d",
				"date":   bson.M{"$toDate": "$_id"},
			}},
			"orders":  bson.M{"$sum": 1},
			"revenue": bson.M{"$sum": "$price"},
		}}},
		bson.D{{Key: "$sort", Value: bson.M{"_id": 1}}},
		bson.D{{Key: "$project", Value: bson.M{
			"_id":     0,
			"date":    "$_id",
			"orders":  1,
			"revenue": 1,
		}}},
	}
	cursor, err := s.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var points []models.ChartPoint
	if err := cursor.All(ctx, &points); err != nil {
		return nil, err
	}
	return points, nil
}
