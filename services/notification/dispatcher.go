package notification

import (
	"context"
	"fmt"

	"inkwell/models"
	"inkwell/services/tasks"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AsynqDispatcher enqueues push work onto the Redis-backed queue consumed by the
// dispatch worker.
type AsynqDispatcher struct {
	Client *asynq.Client
}

func NewAsynqDispatcher(client *asynq.Client) *AsynqDispatcher {
	return &AsynqDispatcher{Client: client}
}

func (d *AsynqDispatcher) EnqueueDispatch(ctx context.Context, notification models.ReactionNotification, deviceToken string) error {
	task, opts, err := tasks.NewPushDispatchTask(tasks.PushDispatchPayload{
		Notification: notification,
		DeviceToken:  deviceToken,
	})
	if err != nil {
		return fmt.Errorf("failed to build dispatch task: %w", err)
	}
	if _, err := d.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue dispatch task: %w", err)
	}
	return nil
}

func (d *AsynqDispatcher) EnqueueFlush(ctx context.Context, recipientID primitive.ObjectID, deviceToken string) error {
	task, opts, err := tasks.NewBacklogFlushTask(tasks.BacklogFlushPayload{
		RecipientID: recipientID,
		DeviceToken: deviceToken,
	})
	if err != nil {
		return fmt.Errorf("failed to build flush task: %w", err)
	}
	if _, err := d.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue flush task: %w", err)
	}
	return nil
}
