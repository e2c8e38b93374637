package reaction

import (
	"context"

	postRepo "inkwell/database/repository/post"
	reactionRepo "inkwell/database/repository/reaction"
	"inkwell/models"
	"inkwell/services/notification"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Actor identifies the authenticated user submitting a reaction.
type Actor struct {
	ID       primitive.ObjectID
	Username string
}

// ReactionService orchestrates reaction intake and the notification decision.
type ReactionService interface {
	// SubmitReaction persists the reaction, creates its notification record and
	// either dispatches a push (author reachable) or defers it (author not).
	SubmitReaction(ctx context.Context, postID primitive.ObjectID, input models.ReactionInput, actor Actor) error
}

// DefaultReactionService is the production implementation.
type DefaultReactionService struct {
	Posts      postRepo.PostRepository
	Reactions  reactionRepo.ReactionRepository
	Registry   notification.Registry
	Dispatcher notification.Dispatcher
}
