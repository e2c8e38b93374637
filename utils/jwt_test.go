package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestGenerateAndParseToken(t *testing.T) {
	userID := primitive.NewObjectID()

	token, err := GenerateToken("alice", userID.Hex(), 30*time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	data, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", data.Username)
	assert.Equal(t, userID, data.UserID)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), data.ExpiresAt, 5*time.Second)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := GenerateToken("alice", primitive.NewObjectID().Hex(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestParseTokenRejectsBadUserID(t *testing.T) {
	// Token lacking a user_id that parses into an object ID must be rejected
	// even when the signature is valid.
	token, err := GenerateToken("alice", "not-hex", time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.Error(t, err)
}
