package reactionRepo

import (
	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReactionRepository defines data access for reactions and their notifications.
type ReactionRepository interface {
	// CreateReaction inserts a new reaction record and fills in its ID.
	CreateReaction(reaction *models.Reaction) error
	// CreateNotification inserts a new reaction notification and fills in its ID.
	CreateNotification(notification *models.ReactionNotification) error
	// ListUnsent retrieves up to limit notifications for the recipient with sent=false.
	ListUnsent(recipientID primitive.ObjectID, limit int64) ([]models.ReactionNotification, error)
	// MarkSent flips the notification's sent flag to true; returns the modified count.
	MarkSent(id primitive.ObjectID) (int64, error)
}
