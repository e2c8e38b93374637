package user

import (
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserByID retrieves a user by its document ID.
func (s *DefaultUserService) GetUserByID(id primitive.ObjectID) (*models.User, error) {
	return s.Repo.GetByID(id)
}

// GetUserByUsername retrieves a user by its unique username.
func (s *DefaultUserService) GetUserByUsername(username string) (*models.User, error) {
	return s.Repo.GetByUsername(username)
}
