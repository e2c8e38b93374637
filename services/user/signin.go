package user

import (
	"fmt"
	"time"

	"inkwell/config"
	"inkwell/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthenticateUser verifies the credentials and issues a signed bearer token
// carrying the username as subject and the user's document ID.
func (s *DefaultUserService) AuthenticateUser(username, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	ttl := time.Duration(config.AppConfig.TokenExpiryMinutes) * time.Minute
	token, err := utils.GenerateToken(usr.Username, usr.ID.Hex(), ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthResponse{AccessToken: token, TokenType: "bearer"}, nil
}
