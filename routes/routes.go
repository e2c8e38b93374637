package routes

import (
	"net/http"
	"time"

	"inkwell/handlers"
	"inkwell/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user and device registration endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/users")
	{
		api.POST("", hb.RegisterUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetCurrentUserHandler)
		api.POST("/notifications/register", hb.RegisterDeviceHandler)
		api.PUT("/notification/deregister", hb.DeregisterDeviceHandler)
	}
}

// RegisterAuthRoutes registers the login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/login", hb.AuthenticateUserHandler)
}

// RegisterPostRoutes registers post CRUD and reaction endpoints.
func RegisterPostRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/posts")
	{
		api.GET("", hb.ListPostsHandler)
		api.GET("/:id", hb.GetPostHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		protected.POST("", hb.CreatePostHandler)
		protected.PUT("/:id", hb.UpdatePostHandler)
		protected.DELETE("/:id", hb.DeletePostHandler)
		protected.POST("/react/:id", hb.SubmitReactionHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Inkwell"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterPostRoutes(r, hb)
	RegisterHealthRoute(r)
}
