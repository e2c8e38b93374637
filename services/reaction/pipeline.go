package reaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// SubmitReaction runs the reaction pipeline:
//
//  1. validate the emoji and load the post (its author is the recipient),
//  2. persist the Reaction; failure here aborts the request,
//  3. build the ReactionNotification with the post's title denormalized in,
//  4. look up a usable device registration for the author,
//  5. found: persist with sent=true and enqueue the dispatch off the request
//     path; none: persist with sent=false and defer to a later flush.
//
// The reachability lookup and the notification insert are not transactional;
// a crash between the reaction insert and the notification insert leaves a
// reaction without a notification record, an accepted bounded inconsistency.
func (s *DefaultReactionService) SubmitReaction(ctx context.Context, postID primitive.ObjectID, input models.ReactionInput, actor Actor) error {
	logger := utils.GetLogger()

	if !input.Emoji.Valid() {
		return ErrUnknownEmoji
	}

	post, err := s.Posts.GetByID(postID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to fetch post %s: %w", postID.Hex(), err)
	}

	rec := models.Reaction{
		Emoji:     input.Emoji,
		PostID:    post.ID,
		UserID:    actor.ID,
		Username:  actor.Username,
		CreatedAt: time.Now(),
	}
	if err := s.Reactions.CreateReaction(&rec); err != nil {
		return fmt.Errorf("failed to store reaction: %w", err)
	}

	notif := models.ReactionNotification{
		Emoji:           rec.Emoji,
		PostID:          post.ID,
		PostTitle:       post.Title,
		UserID:          rec.UserID,
		Username:        rec.Username,
		RecipientUserID: post.UserID,
		Sent:            false,
		CreatedAt:       time.Now(),
	}

	usable, err := s.Registry.FindUsable(ctx, post.UserID)
	if err != nil {
		return fmt.Errorf("reachability lookup failed: %w", err)
	}
	if usable != nil {
		// Sent is recorded optimistically: it means a dispatch was attempted
		// while a device appeared reachable, not that delivery was confirmed.
		notif.Sent = true
	}

	if err := s.Reactions.CreateNotification(&notif); err != nil {
		// The reaction itself stands; surface the storage failure.
		return fmt.Errorf("failed to store reaction notification: %w", err)
	}

	if usable != nil {
		if err := s.Dispatcher.EnqueueDispatch(ctx, notif, usable.DeviceToken); err != nil {
			// Best-effort from here on: the flag is not rolled back.
			logger.Warn("failed to enqueue push dispatch",
				zap.String("notificationId", notif.ID.Hex()),
				zap.String("recipientId", notif.RecipientUserID.Hex()),
				zap.Error(err))
		}
	}

	logger.Debug("reaction submitted",
		zap.String("postId", post.ID.Hex()),
		zap.String("reactorId", actor.ID.Hex()),
		zap.Bool("dispatched", usable != nil))

	return nil
}
