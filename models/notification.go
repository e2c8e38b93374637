package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReactionNotification is created alongside each Reaction and addressed to the
// post's author. Sent flips false to true exactly once: either at creation, when a
// usable device registration exists, or later when the backlog is flushed.
type ReactionNotification struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Emoji           Emoji              `bson:"emoji" json:"emoji"`
	PostID          primitive.ObjectID `bson:"postId" json:"postId"`
	PostTitle       string             `bson:"postTitle" json:"postTitle"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Username        string             `bson:"username" json:"username"`
	RecipientUserID primitive.ObjectID `bson:"recipientUserId" json:"recipientUserId"`
	Sent            bool               `bson:"sent" json:"sent"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
