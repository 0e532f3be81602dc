package failureRepo

import (
	"context"
	"fmt"
	"time"

	"grandstay/database"
	"grandstay/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FailureRepository defines data access for payment failure records.
type FailureRepository interface {
	Create(record *models.FailureRecord) error
	GetByProviderOrderID(orderID string) ([]models.FailureRecord, error)
}

// MongoFailureRepo implements FailureRepository using MongoDB.
type MongoFailureRepo struct {
	coll *mongo.Collection
}

// NewMongoFailureRepo creates a new instance of FailureRepository using MongoDB.
func NewMongoFailureRepo() FailureRepository {
	coll := database.MongoClient.Database("grandstay").Collection("payment_failures")
	repo := &MongoFailureRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoFailureRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_order_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a failure record.
func (r *MongoFailureRepo) Create(record *models.FailureRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	record.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to create failure record: %w", err)
	}
	return nil
}

// GetByProviderOrderID retrieves all failure records for a provider order,
// newest first. Used when reconciling a disputed charge.
func (r *MongoFailureRepo) GetByProviderOrderID(orderID string) ([]models.FailureRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"provider_order_id": orderID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve failure records for order %s: %w", orderID, err)
	}
	defer cursor.Close(ctx)

	var records []models.FailureRecord
	for cursor.Next(ctx) {
		var rec models.FailureRecord
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("failed to decode failure record: %w", err)
		}
		records = append(records, rec)
	}
	return records, nil
}
