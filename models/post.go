package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post is the stored post document.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title     string             `bson:"title" json:"title"`
	Content   string             `bson:"content" json:"content"`
	Published bool               `bson:"published" json:"published"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// PostInput is the payload accepted when creating a post.
type PostInput struct {
	Title     string `json:"title" binding:"required,min=1"`
	Content   string `json:"content" binding:"required,min=10,max=500"`
	Published *bool  `json:"published"`
}

// PostUpdate carries a partial update; nil fields are left untouched.
type PostUpdate struct {
	Title     *string `json:"title" binding:"omitempty,min=1"`
	Content   *string `json:"content" binding:"omitempty,min=10"`
	Published *bool   `json:"published"`
}
