package notification

import "errors"

// ErrNoActiveRegistration signals a deregistration with no matching active record.
var ErrNoActiveRegistration = errors.New("no active device registration found")
