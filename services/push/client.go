package push

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"inkwell/models"
	"inkwell/utils"

	"go.uber.org/zap"
)

// Client sends a single push notification to a device token. Delivery is
// best-effort: Send never reports failure to its caller, it only logs the
// outcome class.
type Client interface {
	Send(ctx context.Context, notification models.ReactionNotification, deviceToken string)
}

// GatewayClient posts notification payloads to the messaging provider over HTTP.
type GatewayClient struct {
	Endpoint    string
	Credentials CredentialProvider
	HTTPClient  *http.Client
}

// NewGatewayClient creates a gateway client with a bounded request timeout.
func NewGatewayClient(endpoint string, credentials CredentialProvider) *GatewayClient {
	return &GatewayClient{
		Endpoint:    endpoint,
		Credentials: credentials,
		HTTPClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

type gatewayNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound"`
}

type gatewayPayload struct {
	To           string              `json:"to"`
	Notification gatewayNotification `json:"notification"`
	Priority     string              `json:"priority"`
}

// NotificationBody renders the push body text for a reaction notification.
func NotificationBody(n models.ReactionNotification) string {
	return fmt.Sprintf("%s reacted with %s to your post: %s", n.Username, n.Emoji, n.PostTitle)
}

// Send issues one push attempt. All failures are swallowed and logged; the
// originating request must never fail because of push delivery.
func (c *GatewayClient) Send(ctx context.Context, notification models.ReactionNotification, deviceToken string) {
	logger := utils.GetLogger()

	token, err := c.Credentials.Token(ctx)
	if err != nil {
		logger.Error("push: failed to acquire gateway credential", zap.Error(err))
		return
	}

	payload := gatewayPayload{
		To: deviceToken,
		Notification: gatewayNotification{
			Title: "User reaction",
			Body:  NotificationBody(notification),
			Sound: "default",
		},
		Priority: "high",
	}
	body, err := json.Marshal(payload)
	if err != nil {
		logger.Error("push: failed to encode payload", zap.Error(err))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		logger.Error("push: failed to build request", zap.Error(err))
		return
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		var netErr net.Error
		switch {
		case errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()):
			logger.Warn("push: gateway request timed out",
				zap.String("notificationId", notification.ID.Hex()), zap.Error(err))
		default:
			logger.Warn("push: network error contacting gateway",
				zap.String("notificationId", notification.ID.Hex()), zap.Error(err))
		}
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		logger.Info("push: dispatch attempted",
			zap.String("notificationId", notification.ID.Hex()),
			zap.String("recipientId", notification.RecipientUserID.Hex()),
			zap.Int("status", resp.StatusCode))
		return
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	logger.Warn("push: gateway rejected request",
		zap.String("notificationId", notification.ID.Hex()),
		zap.Int("status", resp.StatusCode),
		zap.ByteString("response", respBody))
}
