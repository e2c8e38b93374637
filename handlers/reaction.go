package handlers

import (
	"errors"
	"net/http"

	"inkwell/middleware"
	"inkwell/models"
	reactionService "inkwell/services/reaction"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReactionHandler exposes the reaction submission endpoint.
type ReactionHandler struct {
	Service reactionService.ReactionService
}

func NewReactionHandler(svc reactionService.ReactionService) *ReactionHandler {
	return &ReactionHandler{Service: svc}
}

// SubmitReactionHandler handles POST /posts/react/:id. The caller gets a
// response as soon as the reaction and its notification are persisted; any push
// happens off the request path.
func (h *ReactionHandler) SubmitReactionHandler(c *gin.Context) {
	tokenData, ok := middleware.GetTokenData(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	postID, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format."})
		return
	}

	var in models.ReactionInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	actor := reactionService.Actor{ID: tokenData.UserID, Username: tokenData.Username}
	if err := h.Service.SubmitReaction(c.Request.Context(), postID, in, actor); err != nil {
		switch {
		case errors.Is(err, reactionService.ErrPostNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found."})
		case errors.Is(err, reactionService.ErrUnknownEmoji):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported reaction emoji."})
		default:
			utils.GetLogger().Error("Failed to submit reaction",
				zap.String("postId", postID.Hex()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit reaction"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
