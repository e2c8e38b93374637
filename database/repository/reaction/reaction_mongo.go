package reactionRepo

import (
	"context"
	"fmt"
	"time"

	"inkwell/database"
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReactionRepo implements ReactionRepository using MongoDB.
type MongoReactionRepo struct {
	reactions     *mongo.Collection
	notifications *mongo.Collection
}

// NewMongoReactionRepo creates a new instance of ReactionRepository using MongoDB.
func NewMongoReactionRepo() ReactionRepository {
	repo := &MongoReactionRepo{
		reactions:     database.Collection("reactions"),
		notifications: database.Collection("reaction_notifications"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes covers the backlog query (recipient + sent flag).
func (r *MongoReactionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	_, err := r.notifications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "recipientUserId", Value: 1}, {Key: "sent", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// CreateReaction inserts a new reaction record.
func (r *MongoReactionRepo) CreateReaction(reaction *models.Reaction) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.reactions.InsertOne(ctx, reaction)
	if err != nil {
		return fmt.Errorf("failed to insert reaction: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		reaction.ID = oid
	}
	return nil
}

// CreateNotification inserts a new reaction notification.
func (r *MongoReactionRepo) CreateNotification(notification *models.ReactionNotification) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.notifications.InsertOne(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to insert reaction notification: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		notification.ID = oid
	}
	return nil
}

// ListUnsent retrieves up to limit undelivered notifications for the recipient.
func (r *MongoReactionRepo) ListUnsent(recipientID primitive.ObjectID, limit int64) ([]models.ReactionNotification, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"recipientUserId": recipientID, "sent": false}
	cursor, err := r.notifications.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list unsent notifications: %w", err)
	}
	defer cursor.Close(ctx)

	var notifications []models.ReactionNotification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, fmt.Errorf("failed to decode unsent notifications: %w", err)
	}
	return notifications, nil
}

// MarkSent flips the notification's sent flag to true.
func (r *MongoReactionRepo) MarkSent(id primitive.ObjectID) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.notifications.UpdateOne(ctx,
		bson.M{"_id": id, "sent": false},
		bson.M{"$set": bson.M{"sent": true}},
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notification %s sent: %w", id.Hex(), err)
	}
	return res.ModifiedCount, nil
}
