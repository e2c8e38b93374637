package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmojiValid(t *testing.T) {
	for _, e := range []Emoji{EmojiGrin, EmojiThumbsUp, EmojiHeart, EmojiLaugh, EmojiWow, EmojiSad, EmojiParty} {
		assert.True(t, e.Valid(), "expected %s to be valid", e)
	}

	assert.False(t, Emoji("🦖").Valid())
	assert.False(t, Emoji("thumbsup").Valid())
	assert.False(t, Emoji("").Valid())
}

func TestEmojiUnmarshalRejectsOutsiders(t *testing.T) {
	var input ReactionInput
	err := json.Unmarshal([]byte(`{"emoji":"🦖"}`), &input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported reaction emoji")
}

func TestEmojiUnmarshalAcceptsMembers(t *testing.T) {
	var input ReactionInput
	require.NoError(t, json.Unmarshal([]byte(`{"emoji":"🎉"}`), &input))
	assert.Equal(t, EmojiParty, input.Emoji)
}

func TestEmojiUnmarshalRejectsNonString(t *testing.T) {
	var e Emoji
	assert.Error(t, json.Unmarshal([]byte(`42`), &e))
}
