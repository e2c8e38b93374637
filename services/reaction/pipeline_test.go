package reaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"inkwell/models"
	"inkwell/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubPostRepo struct {
	post *models.Post
	err  error
}

func (s *stubPostRepo) GetAll() ([]models.Post, error) { return nil, nil }
func (s *stubPostRepo) GetByID(id primitive.ObjectID) (*models.Post, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.post, nil
}
func (s *stubPostRepo) Create(post *models.Post) error { return nil }
func (s *stubPostRepo) Update(id primitive.ObjectID, fields map[string]any) error {
	return nil
}
func (s *stubPostRepo) Delete(id primitive.ObjectID) (int64, error) { return 0, nil }

type stubReactionRepo struct {
	reactions     []models.Reaction
	notifications []models.ReactionNotification
	reactionErr   error
	notifErr      error
	unsent        []models.ReactionNotification
	marked        []primitive.ObjectID
	markModified  int64
}

func (s *stubReactionRepo) CreateReaction(r *models.Reaction) error {
	if s.reactionErr != nil {
		return s.reactionErr
	}
	r.ID = primitive.NewObjectID()
	s.reactions = append(s.reactions, *r)
	return nil
}

func (s *stubReactionRepo) CreateNotification(n *models.ReactionNotification) error {
	if s.notifErr != nil {
		return s.notifErr
	}
	n.ID = primitive.NewObjectID()
	s.notifications = append(s.notifications, *n)
	return nil
}

func (s *stubReactionRepo) ListUnsent(recipientID primitive.ObjectID, limit int64) ([]models.ReactionNotification, error) {
	if int64(len(s.unsent)) > limit {
		return s.unsent[:limit], nil
	}
	return s.unsent, nil
}

func (s *stubReactionRepo) MarkSent(id primitive.ObjectID) (int64, error) {
	s.marked = append(s.marked, id)
	return s.markModified, nil
}

// fixedRegistry returns a canned reachability answer.
type fixedRegistry struct {
	record *models.ReachabilityRecord
	err    error
}

func (f fixedRegistry) Register(ctx context.Context, userID primitive.ObjectID, deviceToken string, expiresAt time.Time) (notification.RegisterOutcome, error) {
	return notification.OutcomeAlreadyActive, nil
}

func (f fixedRegistry) Deregister(ctx context.Context, userID primitive.ObjectID, deviceToken string) error {
	return nil
}

func (f fixedRegistry) FindUsable(ctx context.Context, userID primitive.ObjectID) (*models.ReachabilityRecord, error) {
	return f.record, f.err
}

type dispatchCall struct {
	notification models.ReactionNotification
	deviceToken  string
}

type stubDispatcher struct {
	dispatches []dispatchCall
	flushes    []primitive.ObjectID
	err        error
}

func (s *stubDispatcher) EnqueueDispatch(ctx context.Context, n models.ReactionNotification, deviceToken string) error {
	if s.err != nil {
		return s.err
	}
	s.dispatches = append(s.dispatches, dispatchCall{notification: n, deviceToken: deviceToken})
	return nil
}

func (s *stubDispatcher) EnqueueFlush(ctx context.Context, recipientID primitive.ObjectID, deviceToken string) error {
	if s.err != nil {
		return s.err
	}
	s.flushes = append(s.flushes, recipientID)
	return nil
}

func newTestPost(authorID primitive.ObjectID) *models.Post {
	return &models.Post{
		ID:        primitive.NewObjectID(),
		Title:     "Hello",
		Content:   "some longer content",
		Published: true,
		UserID:    authorID,
		CreatedAt: time.Now(),
	}
}

func TestSubmitReactionDispatchesWhenAuthorReachable(t *testing.T) {
	authorID := primitive.NewObjectID()
	post := newTestPost(authorID)
	record := &models.ReachabilityRecord{
		UserID:      authorID,
		DeviceToken: "device-token",
		Active:      true,
		ExpiresAt:   time.Now().Add(time.Hour),
	}

	reactions := &stubReactionRepo{}
	dispatcher := &stubDispatcher{}
	svc := &DefaultReactionService{
		Posts:      &stubPostRepo{post: post},
		Reactions:  reactions,
		Registry:   fixedRegistry{record: record},
		Dispatcher: dispatcher,
	}

	actor := Actor{ID: primitive.NewObjectID(), Username: "bea"}
	err := svc.SubmitReaction(context.Background(), post.ID, models.ReactionInput{Emoji: models.EmojiGrin}, actor)
	require.NoError(t, err)

	require.Len(t, reactions.reactions, 1)
	assert.Equal(t, models.EmojiGrin, reactions.reactions[0].Emoji)
	assert.Equal(t, actor.ID, reactions.reactions[0].UserID)

	require.Len(t, reactions.notifications, 1)
	notif := reactions.notifications[0]
	assert.True(t, notif.Sent)
	assert.Equal(t, authorID, notif.RecipientUserID)
	assert.Equal(t, "Hello", notif.PostTitle)

	require.Len(t, dispatcher.dispatches, 1)
	assert.Equal(t, "device-token", dispatcher.dispatches[0].deviceToken)
	assert.True(t, dispatcher.dispatches[0].notification.Sent)
}

func TestSubmitReactionDefersWhenAuthorUnreachable(t *testing.T) {
	authorID := primitive.NewObjectID()
	post := newTestPost(authorID)

	reactions := &stubReactionRepo{}
	dispatcher := &stubDispatcher{}
	svc := &DefaultReactionService{
		Posts:      &stubPostRepo{post: post},
		Reactions:  reactions,
		Registry:   fixedRegistry{},
		Dispatcher: dispatcher,
	}

	actor := Actor{ID: primitive.NewObjectID(), Username: "bea"}
	err := svc.SubmitReaction(context.Background(), post.ID, models.ReactionInput{Emoji: models.EmojiGrin}, actor)
	require.NoError(t, err)

	require.Len(t, reactions.reactions, 1)
	require.Len(t, reactions.notifications, 1)
	assert.False(t, reactions.notifications[0].Sent)
	assert.Empty(t, dispatcher.dispatches)
}

func TestSubmitReactionRejectsUnknownEmoji(t *testing.T) {
	post := newTestPost(primitive.NewObjectID())
	reactions := &stubReactionRepo{}
	svc := &DefaultReactionService{
		Posts:      &stubPostRepo{post: post},
		Reactions:  reactions,
		Registry:   fixedRegistry{},
		Dispatcher: &stubDispatcher{},
	}

	err := svc.SubmitReaction(context.Background(), post.ID, models.ReactionInput{Emoji: "🦖"}, Actor{ID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, ErrUnknownEmoji)
	assert.Empty(t, reactions.reactions)
	assert.Empty(t, reactions.notifications)
}

func TestSubmitReactionMissingPost(t *testing.T) {
	reactions := &stubReactionRepo{}
	svc := &DefaultReactionService{
		Posts:      &stubPostRepo{err: mongo.ErrNoDocuments},
		Reactions:  reactions,
		Registry:   fixedRegistry{},
		Dispatcher: &stubDispatcher{},
	}

	err := svc.SubmitReaction(context.Background(), primitive.NewObjectID(), models.ReactionInput{Emoji: models.EmojiHeart}, Actor{ID: primitive.NewObjectID()})
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.Empty(t, reactions.reactions)
}

func TestSubmitReactionFailedReactionInsertIsFatal(t *testing.T) {
	post := newTestPost(primitive.NewObjectID())
	reactions := &stubReactionRepo{reactionErr: errors.New("insert failed")}
	svc := &DefaultReactionService{
		Posts:      &stubPostRepo{post: post},
		Reactions:  reactions,
		Registry:   fixedRegistry{},
		Dispatcher: &stubDispatcher{},
	}

	err := svc.SubmitReaction(context.Background(), post.ID, models.ReactionInput{Emoji: models.EmojiHeart}, Actor{ID: primitive.NewObjectID()})
	assert.Error(t, err)
	assert.Empty(t, reactions.notifications)
}

func TestSubmitReactionEnqueueFailureDoesNotFailRequest(t *testing.T) {
	authorID := primitive.NewObjectID()
	post := newTestPost(authorID)
	record := &models.ReachabilityRecord{
		UserID: authorID, DeviceToken: "device-token", Active: true, ExpiresAt: time.Now().Add(time.Hour),
	}

	reactions := &stubReactionRepo{}
	svc := &DefaultReactionService{
		Posts:      &stubPostRepo{post: post},
		Reactions:  reactions,
		Registry:   fixedRegistry{record: record},
		Dispatcher: &stubDispatcher{err: errors.New("queue down")},
	}

	err := svc.SubmitReaction(context.Background(), post.ID, models.ReactionInput{Emoji: models.EmojiHeart}, Actor{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	// Sent stays true: "sent" means a dispatch was attempted, not delivered.
	require.Len(t, reactions.notifications, 1)
	assert.True(t, reactions.notifications[0].Sent)
}
