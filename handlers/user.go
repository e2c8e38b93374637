package handlers

import (
	"errors"
	"net/http"

	"inkwell/middleware"
	"inkwell/models"
	userService "inkwell/services/user"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes user registration, login and profile endpoints.
type UserHandler struct {
	Service userService.UserService
}

func NewUserHandler(svc userService.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// RegisterUserHandler handles POST /users.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var in models.UserRegistration
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	usr, err := h.Service.RegisterUser(in)
	if err != nil {
		if errors.Is(err, userService.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is already taken"})
			return
		}
		logger.Error("User registration failed", zap.String("username", in.Username), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    usr,
	})
}

// AuthenticateUserHandler handles POST /login with form-encoded credentials.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	if username == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	resp, err := h.Service.AuthenticateUser(username, password)
	if err != nil {
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCurrentUserHandler handles GET /users/me.
func (h *UserHandler) GetCurrentUserHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tokenData, ok := middleware.GetTokenData(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	usr, err := h.Service.GetUserByID(tokenData.UserID)
	if err != nil {
		logger.Error("User not found", zap.String("id", tokenData.UserID.Hex()), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, usr)
}
