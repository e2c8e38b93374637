package handlers

import (
	"errors"
	"net/http"

	"inkwell/middleware"
	"inkwell/models"
	postService "inkwell/services/post"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PostHandler exposes post CRUD endpoints.
type PostHandler struct {
	Service postService.PostService
}

func NewPostHandler(svc postService.PostService) *PostHandler {
	return &PostHandler{Service: svc}
}

// ListPostsHandler handles GET /posts.
func (h *PostHandler) ListPostsHandler(c *gin.Context) {
	posts, err := h.Service.ListPosts()
	if err != nil {
		utils.GetLogger().Error("Failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list posts"})
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

// GetPostHandler handles GET /posts/:id.
func (h *PostHandler) GetPostHandler(c *gin.Context) {
	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format."})
		return
	}

	p, err := h.Service.GetPost(id)
	if err != nil {
		if errors.Is(err, postService.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": p})
}

// CreatePostHandler handles POST /posts.
func (h *PostHandler) CreatePostHandler(c *gin.Context) {
	tokenData, ok := middleware.GetTokenData(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var in models.PostInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Service.CreatePost(in, tokenData.UserID)
	if err != nil {
		utils.GetLogger().Error("Failed to create post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Post created successfully.",
		"post":    p,
	})
}

// UpdatePostHandler handles PUT /posts/:id.
func (h *PostHandler) UpdatePostHandler(c *gin.Context) {
	tokenData, ok := middleware.GetTokenData(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format."})
		return
	}

	var in models.PostUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.Service.UpdatePost(id, in, tokenData.UserID)
	if err != nil {
		switch {
		case errors.Is(err, postService.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found."})
		case errors.Is(err, postService.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to modify this post."})
		default:
			utils.GetLogger().Error("Failed to update post", zap.String("id", id.Hex()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update post"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Post updated successfully.",
		"post":    p,
	})
}

// DeletePostHandler handles DELETE /posts/:id.
func (h *PostHandler) DeletePostHandler(c *gin.Context) {
	tokenData, ok := middleware.GetTokenData(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	id, err := utils.ParseObjectID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid post ID format."})
		return
	}

	if err := h.Service.DeletePost(id, tokenData.UserID); err != nil {
		switch {
		case errors.Is(err, postService.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found."})
		case errors.Is(err, postService.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to delete this post."})
		default:
			utils.GetLogger().Error("Failed to delete post", zap.String("id", id.Hex()), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
