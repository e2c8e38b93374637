package notification

import (
	"context"
	"fmt"

	reactionRepo "inkwell/database/repository/reaction"
	"inkwell/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultFlushBatchSize bounds how many deferred notifications a single
// registration replays. Anything beyond the bound is never retried automatically.
const DefaultFlushBatchSize = 10

// Flusher replays undelivered reaction notifications to a freshly registered
// device. Each record is marked sent and dispatched fire-and-forget.
//
// The read and the mark are separate operations: a reaction arriving between
// them can observe the new registration and dispatch on its own, producing a
// duplicate attempt. A claim-and-mark via FindOneAndUpdate on sent=false would
// close that window; MarkSent filters on sent=false so the swap stays local.
type Flusher struct {
	Reactions  reactionRepo.ReactionRepository
	Dispatcher Dispatcher
	BatchSize  int64
}

// Flush retrieves up to BatchSize unsent notifications for the recipient and
// attempts one dispatch each to the newly registered device.
func (f *Flusher) Flush(ctx context.Context, recipientID primitive.ObjectID, deviceToken string) error {
	logger := utils.GetLogger()

	limit := f.BatchSize
	if limit <= 0 {
		limit = DefaultFlushBatchSize
	}

	pending, err := f.Reactions.ListUnsent(recipientID, limit)
	if err != nil {
		return fmt.Errorf("failed to load notification backlog: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	logger.Info("flushing notification backlog",
		zap.String("recipientId", recipientID.Hex()),
		zap.Int("count", len(pending)))

	for _, n := range pending {
		modified, err := f.Reactions.MarkSent(n.ID)
		if err != nil {
			logger.Warn("failed to mark backlog notification sent",
				zap.String("notificationId", n.ID.Hex()), zap.Error(err))
			continue
		}
		if modified == 0 {
			// Someone else already claimed it.
			continue
		}
		n.Sent = true
		if err := f.Dispatcher.EnqueueDispatch(ctx, n, deviceToken); err != nil {
			logger.Warn("failed to enqueue backlog dispatch",
				zap.String("notificationId", n.ID.Hex()), zap.Error(err))
		}
	}
	return nil
}
