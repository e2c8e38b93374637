package postRepo

import (
	"context"
	"fmt"
	"time"

	"inkwell/database"
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPostRepo implements PostRepository using MongoDB.
type MongoPostRepo struct {
	coll *mongo.Collection
}

// NewMongoPostRepo creates a new instance of PostRepository using MongoDB.
func NewMongoPostRepo() PostRepository {
	return &MongoPostRepo{coll: database.Collection("posts")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves all posts.
func (r *MongoPostRepo) GetAll() ([]models.Post, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("failed to decode posts: %w", err)
	}
	return posts, nil
}

// GetByID retrieves a post by its document ID.
func (r *MongoPostRepo) GetByID(id primitive.ObjectID) (*models.Post, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var post models.Post
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

// Create inserts a new post record.
func (r *MongoPostRepo) Create(post *models.Post) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return fmt.Errorf("failed to insert post: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return nil
}

// Update applies a partial update to the matching post.
func (r *MongoPostRepo) Update(id primitive.ObjectID, fields map[string]any) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update post with id %s: %w", id.Hex(), err)
	}
	return nil
}

// Delete removes a post record by its ID.
func (r *MongoPostRepo) Delete(id primitive.ObjectID) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete post with id %s: %w", id.Hex(), err)
	}
	return res.DeletedCount, nil
}
