package post

import (
	postRepo "inkwell/database/repository/post"
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostService defines business logic for post operations.
type PostService interface {
	// ListPosts retrieves all posts.
	ListPosts() ([]models.Post, error)
	// GetPost retrieves a post by its document ID.
	GetPost(id primitive.ObjectID) (*models.Post, error)
	// CreatePost stores a new post owned by the author.
	CreatePost(in models.PostInput, authorID primitive.ObjectID) (*models.Post, error)
	// UpdatePost applies a partial update; only the owner may update.
	UpdatePost(id primitive.ObjectID, in models.PostUpdate, actorID primitive.ObjectID) (*models.Post, error)
	// DeletePost removes a post; only the owner may delete.
	DeletePost(id primitive.ObjectID, actorID primitive.ObjectID) error
}

// DefaultPostService is the production implementation.
type DefaultPostService struct {
	Repo postRepo.PostRepository
}
