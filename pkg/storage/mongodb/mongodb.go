package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/strokeapp/stroke-backend/config"
)

// Connect opens the MongoDB client that backs the prediction document store.
// The caller owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerSelectionTimeout(3 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}

// PredictionCollection returns the collection holding stroke prediction documents.
func PredictionCollection(client *mongo.Client, cfg *config.Config) *mongo.Collection {
	return client.Database(cfg.MongoDBName).Collection(cfg.MongoCollection)
}
