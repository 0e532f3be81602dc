package notification

import (
	"context"

	"grandstay/models"

	"github.com/hibiken/asynq"
)

// NotificationService dispatches guest-facing booking confirmations.
// Dispatch is fire-and-forget; no outcome ever reaches the caller.
type NotificationService interface {
	DispatchBookingConfirmation(booking *models.Booking)
}

// Channel is one independent confirmation delivery channel.
type Channel interface {
	Name() models.NotificationChannel
	Send(ctx context.Context, payload models.ConfirmationPayload) error
}

// TaskEnqueuer is the slice of asynq.Client the fanout needs.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}
