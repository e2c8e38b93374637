package user

import (
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser hashes the password and creates the user record. Uniqueness of
// username and email is enforced by the collection's indexes.
func (s *DefaultUserService) RegisterUser(in models.UserRegistration) (*models.User, error) {
	logger := utils.GetLogger()

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	usr := &models.User{
		Username:     in.Username,
		Email:        in.Email,
		FullName:     in.FullName,
		PasswordHash: string(hashed),
		Disabled:     false,
		CreatedAt:    time.Now(),
	}

	if err := s.Repo.Create(usr); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUsernameTaken
		}
		logger.Error("Failed to create user", zap.String("username", in.Username), zap.Error(err))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	logger.Info("User registered", zap.String("username", usr.Username), zap.String("id", usr.ID.Hex()))
	return usr, nil
}
