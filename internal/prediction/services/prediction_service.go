package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/strokeapp/stroke-backend/internal/prediction/models"
)

// PredictionService reads and writes stroke prediction documents. The collection
// handle is injected at startup; the service never owns its lifecycle.
type PredictionService struct {
	Collection *mongo.Collection
}

func NewPredictionService(coll *mongo.Collection) *PredictionService {
	return &PredictionService{Collection: coll}
}

// Save stores one assessment for the given user and returns the generated
// document ID. created_at/updated_at are set here and never touched again.
func (s *PredictionService) Save(ctx context.Context, userID int, userEmail string, input models.StrokeInput, result models.PredictionResult) (string, error) {
	now := time.Now().UTC()
	record := models.PredictionRecord{
		UserID:     &userID,
		UserEmail:  userEmail,
		InputData:  input,
		Prediction: result,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := s.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", fmt.Errorf("insert prediction: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FetchRecent returns up to limit records across all users, newest first.
func (s *PredictionService) FetchRecent(ctx context.Context, limit int64) ([]models.PredictionRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.Collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find predictions: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.PredictionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode predictions: %w", err)
	}
	return records, nil
}

// FetchByUser returns up to limit records for one user, newest first.
func (s *PredictionService) FetchByUser(ctx context.Context, userID int, limit int64) ([]models.PredictionRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := s.Collection.Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find predictions for user %d: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var records []models.PredictionRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode predictions for user %d: %w", userID, err)
	}
	return records, nil
}
