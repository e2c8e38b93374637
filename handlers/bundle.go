package handlers

import (
	userRepo "inkwell/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates all route handlers plus the repositories the
// middleware needs.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	// User endpoints.
	RegisterUserHandler     gin.HandlerFunc
	AuthenticateUserHandler gin.HandlerFunc
	GetCurrentUserHandler   gin.HandlerFunc

	// Post endpoints.
	ListPostsHandler  gin.HandlerFunc
	GetPostHandler    gin.HandlerFunc
	CreatePostHandler gin.HandlerFunc
	UpdatePostHandler gin.HandlerFunc
	DeletePostHandler gin.HandlerFunc

	// Reaction endpoint.
	SubmitReactionHandler gin.HandlerFunc

	// Device registration endpoints.
	RegisterDeviceHandler   gin.HandlerFunc
	DeregisterDeviceHandler gin.HandlerFunc
}
