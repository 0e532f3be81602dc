package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"grandstay/config"
	"grandstay/models"
	"grandstay/services/notification"
	"grandstay/services/tasks"

	"github.com/hibiken/asynq"
)

// InitNotificationWorker runs the async notification worker in background.
func InitNotificationWorker(channels []notification.Channel) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"notifications": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleConfirmationTask(channels))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleConfirmationTask delivers one confirmation on its channel. Delivery
// failures are logged and swallowed: a courtesy message never earns a retry
// and never touches booking state.
func handleConfirmationTask(channels []notification.Channel) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ConfirmationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationHandler] 🔴 Invalid payload: %v", err)
			return nil
		}

		for _, ch := range channels {
			if ch.Name() != p.Channel {
				continue
			}
			if err := ch.Send(ctx, p); err != nil {
				log.Printf("[ConfirmationHandler] ❌ %s delivery failed for booking %s: %v", p.Channel, p.BookingID, err)
			}
			return nil
		}

		log.Printf("[ConfirmationHandler] ⚠️ Unknown channel: %s", p.Channel)
		return nil
	}
}
