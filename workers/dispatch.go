package workers

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"inkwell/config"
	"inkwell/services/notification"
	"inkwell/services/push"
	"inkwell/services/tasks"

	"github.com/hibiken/asynq"
)

// InitDispatchWorker runs the async push worker in background. Delivery is
// best-effort: handlers never return an error, so nothing is retried.
func InitDispatchWorker(pushClient push.Client, flusher *notification.Flusher) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypePushDispatch, handleDispatchTask(pushClient))
	mux.HandleFunc(tasks.TypeBacklogFlush, handleFlushTask(flusher))

	// Start async worker with retry logic
	go func() {
		log.Println("[DispatchWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DispatchWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DispatchWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleDispatchTask(pushClient push.Client) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.PushDispatchPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DispatchWorker] invalid dispatch payload: %v", err)
			return nil
		}

		pushClient.Send(ctx, p.Notification, p.DeviceToken)
		return nil
	}
}

func handleFlushTask(flusher *notification.Flusher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.BacklogFlushPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DispatchWorker] invalid flush payload: %v", err)
			return nil
		}

		if err := flusher.Flush(ctx, p.RecipientID, p.DeviceToken); err != nil {
			log.Printf("[DispatchWorker] backlog flush failed for %s: %v", p.RecipientID.Hex(), err)
		}
		return nil
	}
}
