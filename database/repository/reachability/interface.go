package reachabilityRepo

import (
	"time"

	"inkwell/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReachabilityRepository defines data access for device registration records.
type ReachabilityRepository interface {
	// FindActive looks up an active record for the exact (user, device token)
	// pair. Returns nil when none exists.
	FindActive(userID primitive.ObjectID, deviceToken string) (*models.ReachabilityRecord, error)
	// Insert stores a new registration record and fills in its ID.
	Insert(record *models.ReachabilityRecord) error
	// Deactivate flips the matching active record's flag to inactive; returns
	// the modified count. Relies on Mongo's atomic single-document update, so
	// concurrent deregistrations of the same pair resolve first-writer-wins.
	Deactivate(userID primitive.ObjectID, deviceToken string) (int64, error)
	// FindUsable returns one active record with expiry strictly after now, or
	// nil when none exists.
	FindUsable(userID primitive.ObjectID, now time.Time) (*models.ReachabilityRecord, error)
}
