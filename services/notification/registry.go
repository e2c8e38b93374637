package notification

import (
	"context"
	"fmt"
	"time"

	reachabilityRepo "inkwell/database/repository/reachability"
	"inkwell/models"
	"inkwell/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultRegistry is the production Registry implementation.
type DefaultRegistry struct {
	Repo       reachabilityRepo.ReachabilityRepository
	Dispatcher Dispatcher
}

// Register records a device as reachable for the user until expiresAt.
func (s *DefaultRegistry) Register(ctx context.Context, userID primitive.ObjectID, deviceToken string, expiresAt time.Time) (RegisterOutcome, error) {
	logger := utils.GetLogger()

	existing, err := s.Repo.FindActive(userID, deviceToken)
	if err != nil {
		return OutcomeAlreadyActive, fmt.Errorf("registration lookup failed: %w", err)
	}
	if existing != nil {
		return OutcomeAlreadyActive, nil
	}

	record := &models.ReachabilityRecord{
		UserID:      userID,
		DeviceToken: deviceToken,
		Active:      true,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Insert(record); err != nil {
		return OutcomeAlreadyActive, fmt.Errorf("failed to store registration: %w", err)
	}

	// A fresh registration replays the backlog; a repeat must not, or deferred
	// notifications would be delivered twice per reachability session.
	if err := s.Dispatcher.EnqueueFlush(ctx, userID, deviceToken); err != nil {
		logger.Warn("failed to enqueue backlog flush",
			zap.String("userId", userID.Hex()), zap.Error(err))
	}

	return OutcomeRegistered, nil
}

// Deregister flips the matching active record to inactive.
func (s *DefaultRegistry) Deregister(ctx context.Context, userID primitive.ObjectID, deviceToken string) error {
	modified, err := s.Repo.Deactivate(userID, deviceToken)
	if err != nil {
		return fmt.Errorf("failed to deactivate registration: %w", err)
	}
	if modified == 0 {
		return ErrNoActiveRegistration
	}
	return nil
}

// FindUsable returns one active, unexpired record for the user, or nil.
func (s *DefaultRegistry) FindUsable(ctx context.Context, userID primitive.ObjectID) (*models.ReachabilityRecord, error) {
	return s.Repo.FindUsable(userID, time.Now())
}
