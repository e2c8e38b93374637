package tasks

import (
	"encoding/json"

	"inkwell/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TypePushDispatch = "push:dispatch"
	TypeBacklogFlush = "notification:flush"
)

// PushDispatchPayload carries one best-effort push attempt.
type PushDispatchPayload struct {
	Notification models.ReactionNotification `json:"notification"`
	DeviceToken  string                      `json:"deviceToken"`
}

// BacklogFlushPayload identifies the recipient whose deferred notifications
// should be replayed to a freshly registered device.
type BacklogFlushPayload struct {
	RecipientID primitive.ObjectID `json:"recipientId"`
	DeviceToken string             `json:"deviceToken"`
}

// NewPushDispatchTask builds a dispatch task. Delivery is best-effort, so the
// task never retries.
func NewPushDispatchTask(payload PushDispatchPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypePushDispatch, b)
	opts := []asynq.Option{asynq.MaxRetry(0)}

	return task, opts, nil
}

// NewBacklogFlushTask builds a flush task for a fresh registration.
func NewBacklogFlushTask(payload BacklogFlushPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBacklogFlush, b)
	opts := []asynq.Option{asynq.MaxRetry(0)}

	return task, opts, nil
}
