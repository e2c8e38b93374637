package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"inkwell/models"
	reactionService "inkwell/services/reaction"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubReactionService struct {
	err error

	gotPostID primitive.ObjectID
	gotInput  models.ReactionInput
	gotActor  reactionService.Actor
}

func (s *stubReactionService) SubmitReaction(_ context.Context, postID primitive.ObjectID, input models.ReactionInput, actor reactionService.Actor) error {
	s.gotPostID = postID
	s.gotInput = input
	s.gotActor = actor
	return s.err
}

func reactionRouter(svc reactionService.ReactionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewReactionHandler(svc)
	router := gin.New()
	router.POST("/posts/react/:id", identity(testTokenData()), h.SubmitReactionHandler)
	return router
}

func TestSubmitReactionAccepted(t *testing.T) {
	svc := &stubReactionService{}
	router := reactionRouter(svc)
	postID := primitive.NewObjectID()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/react/"+postID.Hex(), bytes.NewBufferString(`{"emoji":"👍"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, postID, svc.gotPostID)
	assert.Equal(t, models.EmojiThumbsUp, svc.gotInput.Emoji)
	assert.Equal(t, "alice", svc.gotActor.Username)
}

func TestSubmitReactionInvalidPostID(t *testing.T) {
	router := reactionRouter(&stubReactionService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/react/not-an-id", bytes.NewBufferString(`{"emoji":"👍"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitReactionUnknownEmojiInBody(t *testing.T) {
	svc := &stubReactionService{}
	router := reactionRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/react/"+primitive.NewObjectID().Hex(), bytes.NewBufferString(`{"emoji":"🦖"}`))
	router.ServeHTTP(w, req)

	// Rejected at decode time before the service is reached.
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, svc.gotPostID.IsZero())
}

func TestSubmitReactionPostNotFound(t *testing.T) {
	router := reactionRouter(&stubReactionService{err: reactionService.ErrPostNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/react/"+primitive.NewObjectID().Hex(), bytes.NewBufferString(`{"emoji":"❤️"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSubmitReactionServiceFailure(t *testing.T) {
	router := reactionRouter(&stubReactionService{err: context.DeadlineExceeded})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/posts/react/"+primitive.NewObjectID().Hex(), bytes.NewBufferString(`{"emoji":"🎉"}`))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
