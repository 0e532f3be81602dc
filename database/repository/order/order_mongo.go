package orderRepo

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

// OrderRepository defines data access for provider-side payment orders.
// Orders are immutable once created; a cancelled checkout marks its order
// abandoned rather than deleting it.
type OrderRepository interface {
	Create(order *models.Order) error
	GetByOrderID(orderID string) (*models.Order, error)
	MarkAbandoned(orderID string) error
}

// MongoOrderRepo implements OrderRepository using MongoDB.
type MongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo creates a new instance of OrderRepository using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	coll := database.MongoClient.Database("grandstay").Collection("orders")
	repo := &MongoOrderRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOrderRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "order_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new order document.
func (r *MongoOrderRepo) Create(order *models.Order) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	order.CreatedAt = time.Now()
	if order.Status == "" {
		order.Status = models.OrderStatusCreated
	}

	_, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// GetByOrderID retrieves an order by its provider order id.
func (r *MongoOrderRepo) GetByOrderID(orderID string) (*models.Order, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var order models.Order
	if err := r.coll.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch order %s: %w", orderID, err)
	}
	return &order, nil
}

// MarkAbandoned flags an order whose checkout was cancelled.
func (r *MongoOrderRepo) MarkAbandoned(orderID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"order_id": orderID},
		bson.M{"$set": bson.M{"status": models.OrderStatusAbandoned}},
	)
	if err != nil {
		return fmt.Errorf("failed to mark order %s abandoned: %w", orderID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("order %s not found", orderID)
	}
	return nil
}
