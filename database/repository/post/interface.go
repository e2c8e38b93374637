package postRepo

import (
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostRepository defines methods for post data access.
type PostRepository interface {
	// GetAll retrieves all posts.
	GetAll() ([]models.Post, error)
	// GetByID retrieves a post by its document ID.
	GetByID(id primitive.ObjectID) (*models.Post, error)
	// Create inserts a new post record and fills in its ID.
	Create(post *models.Post) error
	// Update applies a partial update to the matching post.
	Update(id primitive.ObjectID, fields map[string]any) error
	// Delete removes a post record by its ID; returns the deleted count.
	Delete(id primitive.ObjectID) (int64, error)
}
