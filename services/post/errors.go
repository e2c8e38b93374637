package post

import "errors"

var (
	// ErrNotFound signals an operation on a post that does not exist.
	ErrNotFound = errors.New("post not found")
	// ErrNotOwner signals a mutation attempted by a user other than the author.
	ErrNotOwner = errors.New("post belongs to another user")
)
