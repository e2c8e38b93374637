package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReachabilityRecord is one claim that a device can receive pushes for a user
// until ExpiresAt. A user may hold several concurrent records (one per device).
// A record is usable only while Active and unexpired.
type ReachabilityRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	DeviceToken string             `bson:"deviceToken" json:"-"`
	Active      bool               `bson:"active" json:"active"`
	ExpiresAt   time.Time          `bson:"expiresAt" json:"expiresAt"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// Usable reports whether the record can currently be dispatched to.
func (r ReachabilityRecord) Usable(now time.Time) bool {
	return r.Active && r.ExpiresAt.After(now)
}
