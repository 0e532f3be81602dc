package tasks

import (
	"encoding/json"

	"grandstay/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "notification:booking_confirmation"

// NewBookingConfirmationTask builds the one-shot dispatch task for a channel.
// MaxRetry is zero: confirmations are best-effort courtesy messages and a
// failed delivery is logged, not retried.
func NewBookingConfirmationTask(payload models.ConfirmationPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{
		asynq.Queue("notifications"),
		asynq.MaxRetry(0),
	}

	return task, opts, nil
}
