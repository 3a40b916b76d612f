// utils/db.go
package utils

import (
	"context"
	"time"

	"plantnet/logger"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection used for the lifetime of
// the process. The caller owns the client and is responsible for
// disconnecting it at shutdown.
func ConnectDB(uri string) *mongo.Client {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.L().Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	// Confirm the deployment is reachable before serving traffic.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.L().Fatal("failed to ping MongoDB", zap.Error(err))
	}

	return client
}
