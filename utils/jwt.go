package utils

import (
	"errors"
	"os"
	"time"

	"inkwell/config"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func secretKey() []byte {
	if config.AppConfig.JWTSecret != "" {
		return []byte(config.AppConfig.JWTSecret)
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("INKWELL")
}

// TokenData carries the identity claims extracted from a bearer token.
type TokenData struct {
	Username  string
	UserID    primitive.ObjectID
	ExpiresAt time.Time
}

// GenerateToken creates a signed JWT with the given username as subject and the
// user's document ID as an auxiliary claim. The token expires after the given duration.
func GenerateToken(username, userID string, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":     username,
		"user_id": userID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(duration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey())
}

// ParseToken validates a token string and extracts its identity claims.
func ParseToken(tokenString string) (*TokenData, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secretKey(), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	username, ok := claims["sub"].(string)
	if !ok || username == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	rawID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("token does not contain a valid 'user_id' claim")
	}
	userID, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, errors.New("token 'user_id' claim is not a valid object ID")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("token does not contain a valid 'exp' claim")
	}

	return &TokenData{
		Username:  username,
		UserID:    userID,
		ExpiresAt: time.Unix(int64(exp), 0),
	}, nil
}
