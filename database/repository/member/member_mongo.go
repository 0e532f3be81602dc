package memberRepo

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

// MemberRepository defines data access for members and their membership purchases.
type MemberRepository interface {
	Create(member *models.Member) error
	GetByID(id string) (*models.Member, error)
	GetByEmail(email string) (*models.Member, error)
	UpdateTier(id, tier string) error
	CreatePurchase(purchase *models.MembershipPurchase) error
	UpdatePurchaseStatus(intentID, status string) error
}

// MongoMemberRepo implements MemberRepository using MongoDB.
type MongoMemberRepo struct {
	coll      *mongo.Collection
	purchases *mongo.Collection
}

// NewMongoMemberRepo creates a new instance of MemberRepository using MongoDB.
func NewMongoMemberRepo() MemberRepository {
	db := database.MongoClient.Database("grandstay")
	repo := &MongoMemberRepo{
		coll:      db.Collection("members"),
		purchases: db.Collection("membership_purchases"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoMemberRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create member indexes: %w", err)
	}

	purchaseIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "member_id", Value: 1}}},
	}
	if _, err := r.purchases.Indexes().CreateMany(ctx, purchaseIndexes); err != nil {
		return fmt.Errorf("failed to create purchase indexes: %w", err)
	}
	return nil
}

// Create inserts a new member document.
func (r *MongoMemberRepo) Create(member *models.Member) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, member)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("an account with email %s already exists", member.Email)
		}
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

// GetByID retrieves a member by its unique ID.
func (r *MongoMemberRepo) GetByID(id string) (*models.Member, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var member models.Member
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&member); err != nil {
		return nil, fmt.Errorf("failed to fetch member with id %s: %w", id, err)
	}
	return &member, nil
}

// GetByEmail retrieves a member by email. Returns nil, nil when absent.
func (r *MongoMemberRepo) GetByEmail(email string) (*models.Member, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var member models.Member
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&member); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch member with email %s: %w", email, err)
	}
	return &member, nil
}

// UpdateTier sets a member's tier after a completed membership purchase.
func (r *MongoMemberRepo) UpdateTier(id, tier string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"tier": tier, "updated_at": time.Now()}},
	)
	if err != nil {
		return fmt.Errorf("failed to update tier for member %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("member with id %s not found", id)
	}
	return nil
}

// CreatePurchase inserts a membership purchase record.
func (r *MongoMemberRepo) CreatePurchase(purchase *models.MembershipPurchase) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	purchase.CreatedAt = time.Now()

	_, err := r.purchases.InsertOne(ctx, purchase)
	if err != nil {
		return fmt.Errorf("failed to create membership purchase: %w", err)
	}
	return nil
}

// UpdatePurchaseStatus mirrors the payment intent status onto the purchase record.
func (r *MongoMemberRepo) UpdatePurchaseStatus(intentID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.purchases.UpdateOne(ctx,
		bson.M{"payment_intent_id": intentID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("failed to update purchase for intent %s: %w", intentID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("purchase for intent %s not found", intentID)
	}
	return nil
}
