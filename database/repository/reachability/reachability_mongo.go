package reachabilityRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell/database"
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReachabilityRepo implements ReachabilityRepository using MongoDB.
type MongoReachabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoReachabilityRepo creates a new instance of ReachabilityRepository using MongoDB.
func NewMongoReachabilityRepo() ReachabilityRepository {
	repo := &MongoReachabilityRepo{coll: database.Collection("device_registrations")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoReachabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "deviceToken", Value: 1}, {Key: "active", Value: 1}}},
		{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "active", Value: 1}, {Key: "expiresAt", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// FindActive looks up an active record for the exact (user, device token) pair.
func (r *MongoReachabilityRepo) FindActive(userID primitive.ObjectID, deviceToken string) (*models.ReachabilityRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "deviceToken": deviceToken, "active": true}
	var record models.ReachabilityRecord
	if err := r.coll.FindOne(ctx, filter).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up registration: %w", err)
	}
	return &record, nil
}

// Insert stores a new registration record.
func (r *MongoReachabilityRepo) Insert(record *models.ReachabilityRecord) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, record)
	if err != nil {
		return fmt.Errorf("failed to insert registration: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid
	}
	return nil
}

// Deactivate flips the matching active record's flag to inactive.
func (r *MongoReachabilityRepo) Deactivate(userID primitive.ObjectID, deviceToken string) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "deviceToken": deviceToken, "active": true}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"active": false}})
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate registration: %w", err)
	}
	return res.ModifiedCount, nil
}

// FindUsable returns one active, unexpired record for the user. The freshest
// expiry wins when several devices are registered; no fan-out.
func (r *MongoReachabilityRepo) FindUsable(userID primitive.ObjectID, now time.Time) (*models.ReachabilityRecord, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID, "active": true, "expiresAt": bson.M{"$gt": now}}
	opts := options.FindOne().SetSort(bson.D{{Key: "expiresAt", Value: -1}})
	var record models.ReachabilityRecord
	if err := r.coll.FindOne(ctx, filter, opts).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up usable registration: %w", err)
	}
	return &record, nil
}
