package reaction

import "errors"

var (
	// ErrPostNotFound signals a reaction to a post that does not exist.
	ErrPostNotFound = errors.New("post not found")
	// ErrUnknownEmoji signals an emoji outside the closed reaction set.
	ErrUnknownEmoji = errors.New("unknown reaction emoji")
)
