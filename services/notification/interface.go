package notification

import (
	"context"
	"time"

	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RegisterOutcome distinguishes a fresh registration from an idempotent repeat.
type RegisterOutcome int

const (
	OutcomeAlreadyActive RegisterOutcome = iota
	OutcomeRegistered
)

func (o RegisterOutcome) String() string {
	if o == OutcomeRegistered {
		return "registered"
	}
	return "already_active"
}

// Registry tracks which (user, device token) pairs can currently receive pushes.
type Registry interface {
	// Register records a device as reachable until expiresAt. Registering an
	// already-active identical pair is a no-op and returns OutcomeAlreadyActive.
	// A fresh OutcomeRegistered triggers a backlog flush for the user.
	Register(ctx context.Context, userID primitive.ObjectID, deviceToken string, expiresAt time.Time) (RegisterOutcome, error)
	// Deregister flips the matching active record to inactive. Returns
	// ErrNoActiveRegistration when no active record matches.
	Deregister(ctx context.Context, userID primitive.ObjectID, deviceToken string) error
	// FindUsable returns one active, unexpired record for the user, or nil.
	FindUsable(ctx context.Context, userID primitive.ObjectID) (*models.ReachabilityRecord, error)
}

// Dispatcher is the work-queue boundary: callers enqueue push work here and a
// worker pool executes it off the request path.
type Dispatcher interface {
	EnqueueDispatch(ctx context.Context, notification models.ReactionNotification, deviceToken string) error
	EnqueueFlush(ctx context.Context, recipientID primitive.ObjectID, deviceToken string) error
}
