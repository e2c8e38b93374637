package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the stored user document.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	FullName     string             `bson:"fullName" json:"fullName"`
	PasswordHash string             `bson:"passwordHash" json:"-"`
	Disabled     bool               `bson:"disabled" json:"disabled"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserRegistration is the payload accepted on signup.
type UserRegistration struct {
	Username string `json:"username" binding:"required,min=1"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName" binding:"required,min=3"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}
