package userRepo

import (
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByID retrieves a user by its document ID.
	GetByID(id primitive.ObjectID) (*models.User, error)
	// GetByUsername retrieves a user by its unique username.
	GetByUsername(username string) (*models.User, error)
	// Create inserts a new user record and fills in its ID.
	Create(user *models.User) error
	// Delete removes a user record by its ID.
	Delete(id primitive.ObjectID) error
}
