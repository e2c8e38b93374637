package handlers

import (
	"errors"
	"net/http"
	"regexp"

	"inkwell/middleware"
	notificationService "inkwell/services/notification"
	"inkwell/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// deviceTokenPattern matches FCM registration tokens.
var deviceTokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1526,1600}$`)

// DeviceHandler exposes the device registration surface of the reachability
// registry.
type DeviceHandler struct {
	Registry notificationService.Registry
}

func NewDeviceHandler(registry notificationService.Registry) *DeviceHandler {
	return &DeviceHandler{Registry: registry}
}

type deviceTokenRequest struct {
	DeviceToken string `json:"deviceToken" binding:"required"`
}

// RegisterDeviceHandler handles POST /users/notifications/register. The
// registration inherits the bearer token's expiry: a device is never considered
// reachable past the session that registered it.
func (h *DeviceHandler) RegisterDeviceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tokenData, ok := middleware.GetTokenData(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req deviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !deviceTokenPattern.MatchString(req.DeviceToken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed device token."})
		return
	}

	outcome, err := h.Registry.Register(c.Request.Context(), tokenData.UserID, req.DeviceToken, tokenData.ExpiresAt)
	if err != nil {
		logger.Error("Device registration failed",
			zap.String("userId", tokenData.UserID.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register device token."})
		return
	}

	if outcome == notificationService.OutcomeAlreadyActive {
		c.JSON(http.StatusOK, gin.H{"message": "Device token is already registered."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Device token registered successfully."})
}

// DeregisterDeviceHandler handles PUT /users/notification/deregister.
func (h *DeviceHandler) DeregisterDeviceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	tokenData, ok := middleware.GetTokenData(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
		return
	}

	var req deviceTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !deviceTokenPattern.MatchString(req.DeviceToken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed device token."})
		return
	}

	if err := h.Registry.Deregister(c.Request.Context(), tokenData.UserID, req.DeviceToken); err != nil {
		if errors.Is(err, notificationService.ErrNoActiveRegistration) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Active device token not found or already inactive."})
			return
		}
		logger.Error("Device deregistration failed",
			zap.String("userId", tokenData.UserID.Hex()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deregister device token."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Device token deregistered successfully."})
}
