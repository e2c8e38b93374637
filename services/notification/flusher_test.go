package notification

import (
	"context"
	"testing"
	"time"

	"inkwell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubBacklogRepo struct {
	unsent       []models.ReactionNotification
	listedLimit  int64
	marked       []primitive.ObjectID
	markModified map[primitive.ObjectID]int64
}

func (s *stubBacklogRepo) CreateReaction(r *models.Reaction) error { return nil }
func (s *stubBacklogRepo) CreateNotification(n *models.ReactionNotification) error {
	return nil
}

func (s *stubBacklogRepo) ListUnsent(recipientID primitive.ObjectID, limit int64) ([]models.ReactionNotification, error) {
	s.listedLimit = limit
	if int64(len(s.unsent)) > limit {
		return s.unsent[:limit], nil
	}
	return s.unsent, nil
}

func (s *stubBacklogRepo) MarkSent(id primitive.ObjectID) (int64, error) {
	s.marked = append(s.marked, id)
	if s.markModified != nil {
		return s.markModified[id], nil
	}
	return 1, nil
}

func backlog(recipientID primitive.ObjectID, n int) []models.ReactionNotification {
	out := make([]models.ReactionNotification, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.ReactionNotification{
			ID:              primitive.NewObjectID(),
			Emoji:           models.EmojiGrin,
			PostID:          primitive.NewObjectID(),
			PostTitle:       "Hello",
			RecipientUserID: recipientID,
			Sent:            false,
			CreatedAt:       time.Now(),
		})
	}
	return out
}

func TestFlushMarksAndDispatchesBacklog(t *testing.T) {
	recipientID := primitive.NewObjectID()
	repo := &stubBacklogRepo{unsent: backlog(recipientID, 3)}
	dispatcher := &recordingDispatcher{}
	flusher := &Flusher{Reactions: repo, Dispatcher: dispatcher, BatchSize: DefaultFlushBatchSize}

	err := flusher.Flush(context.Background(), recipientID, "device-token")
	require.NoError(t, err)

	assert.Equal(t, int64(DefaultFlushBatchSize), repo.listedLimit)
	assert.Len(t, repo.marked, 3)
	require.Len(t, dispatcher.dispatched, 3)
	for _, n := range dispatcher.dispatched {
		assert.True(t, n.Sent)
		assert.Equal(t, recipientID, n.RecipientUserID)
	}
}

func TestFlushHonorsBatchBound(t *testing.T) {
	recipientID := primitive.NewObjectID()
	repo := &stubBacklogRepo{unsent: backlog(recipientID, 15)}
	dispatcher := &recordingDispatcher{}
	flusher := &Flusher{Reactions: repo, Dispatcher: dispatcher, BatchSize: DefaultFlushBatchSize}

	err := flusher.Flush(context.Background(), recipientID, "device-token")
	require.NoError(t, err)

	// Backlog beyond the bound is left for no one: it is never retried automatically.
	assert.Len(t, dispatcher.dispatched, DefaultFlushBatchSize)
}

func TestFlushSkipsAlreadyClaimedNotifications(t *testing.T) {
	recipientID := primitive.NewObjectID()
	pending := backlog(recipientID, 2)
	repo := &stubBacklogRepo{
		unsent: pending,
		markModified: map[primitive.ObjectID]int64{
			pending[0].ID: 0, // claimed concurrently
			pending[1].ID: 1,
		},
	}
	dispatcher := &recordingDispatcher{}
	flusher := &Flusher{Reactions: repo, Dispatcher: dispatcher}

	err := flusher.Flush(context.Background(), recipientID, "device-token")
	require.NoError(t, err)

	require.Len(t, dispatcher.dispatched, 1)
	assert.Equal(t, pending[1].ID, dispatcher.dispatched[0].ID)
}

func TestFlushEmptyBacklogIsANoop(t *testing.T) {
	repo := &stubBacklogRepo{}
	dispatcher := &recordingDispatcher{}
	flusher := &Flusher{Reactions: repo, Dispatcher: dispatcher}

	err := flusher.Flush(context.Background(), primitive.NewObjectID(), "device-token")
	require.NoError(t, err)
	assert.Empty(t, dispatcher.dispatched)
}
