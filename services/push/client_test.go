package push

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testNotification() models.ReactionNotification {
	return models.ReactionNotification{
		ID:              primitive.NewObjectID(),
		Emoji:           models.EmojiGrin,
		PostID:          primitive.NewObjectID(),
		PostTitle:       "Hello",
		Username:        "bea",
		RecipientUserID: primitive.NewObjectID(),
		Sent:            true,
		CreatedAt:       time.Now(),
	}
}

func TestSendPostsExpectedPayload(t *testing.T) {
	var gotAuth, gotContentType string
	var gotBody gatewayPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewGatewayClient(srv.URL, StaticCredentialProvider("fake-token"))
	client.Send(context.Background(), testNotification(), "device-token")

	assert.Equal(t, "Bearer fake-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "device-token", gotBody.To)
	assert.Equal(t, "User reaction", gotBody.Notification.Title)
	assert.Equal(t, "default", gotBody.Notification.Sound)
	assert.Equal(t, "high", gotBody.Priority)
	assert.Contains(t, gotBody.Notification.Body, "bea")
	assert.Contains(t, gotBody.Notification.Body, "Hello")
	assert.Contains(t, gotBody.Notification.Body, string(models.EmojiGrin))
}

func TestSendSwallowsGatewayErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewGatewayClient(srv.URL, StaticCredentialProvider("fake-token"))
	// Must not panic or propagate anything.
	client.Send(context.Background(), testNotification(), "device-token")
}

func TestSendSwallowsNetworkErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewGatewayClient(srv.URL, StaticCredentialProvider("fake-token"))
	client.Send(context.Background(), testNotification(), "device-token")
}

func TestNotificationBody(t *testing.T) {
	n := testNotification()
	body := NotificationBody(n)
	assert.Equal(t, "bea reacted with 😀 to your post: Hello", body)
}
