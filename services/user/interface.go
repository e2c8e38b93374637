package user

import (
	userRepo "inkwell/database/repository/user"
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserService defines business logic for user operations.
type UserService interface {
	// RegisterUser validates the registration details and creates a new user record.
	RegisterUser(in models.UserRegistration) (*models.User, error)
	// AuthenticateUser verifies credentials and returns a signed bearer token.
	AuthenticateUser(username, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user by its document ID.
	GetUserByID(id primitive.ObjectID) (*models.User, error)
	// GetUserByUsername retrieves a user by its unique username.
	GetUserByUsername(username string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse carries the issued bearer token.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
