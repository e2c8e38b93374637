package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Emoji is a member of the closed reaction emoji set. Values outside the set are
// rejected at decode time and again before persistence.
type Emoji string

const (
	EmojiGrin     Emoji = "😀"
	EmojiThumbsUp Emoji = "👍"
	EmojiHeart    Emoji = "❤️"
	EmojiLaugh    Emoji = "😂"
	EmojiWow      Emoji = "😮"
	EmojiSad      Emoji = "😢"
	EmojiParty    Emoji = "🎉"
)

var allowedEmojis = map[Emoji]struct{}{
	EmojiGrin:     {},
	EmojiThumbsUp: {},
	EmojiHeart:    {},
	EmojiLaugh:    {},
	EmojiWow:      {},
	EmojiSad:      {},
	EmojiParty:    {},
}

// Valid reports whether e belongs to the reaction emoji set.
func (e Emoji) Valid() bool {
	_, ok := allowedEmojis[e]
	return ok
}

// UnmarshalJSON enforces set membership on decode.
func (e *Emoji) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if !Emoji(s).Valid() {
		return fmt.Errorf("unsupported reaction emoji: %q", s)
	}
	*e = Emoji(s)
	return nil
}

// Reaction records a single emoji reaction to a post. Immutable once created.
type Reaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Emoji     Emoji              `bson:"emoji" json:"emoji"`
	PostID    primitive.ObjectID `bson:"postId" json:"postId"`
	UserID    primitive.ObjectID `bson:"userId" json:"userId"`
	Username  string             `bson:"username" json:"username"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// ReactionInput is the payload accepted on POST /posts/react/:id.
type ReactionInput struct {
	Emoji Emoji `json:"emoji" binding:"required"`
}
