package notification

import (
	"encoding/json"
	"errors"
	"testing"

	"grandstay/models"
	"grandstay/services/tasks"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeEnqueuer collects tasks and can fail selectively per channel.
type fakeEnqueuer struct {
	tasks   []*asynq.Task
	failFor models.NotificationChannel
}

func (e *fakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	var payload models.ConfirmationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return nil, err
	}
	if e.failFor != "" && payload.Channel == e.failFor {
		return nil, errors.New("queue unavailable")
	}
	e.tasks = append(e.tasks, task)
	return &asynq.TaskInfo{}, nil
}

func confirmedBooking() *models.Booking {
	return &models.Booking{
		ID: "bk-1",
		Guest: models.GuestInfo{
			Name:  "Ada Mwangi",
			Email: "ada@example.com",
			Phone: "+254700000001",
		},
		Items: []models.ServiceItem{
			models.NewRoomItem("room-1", "Deluxe King", models.RoomDetails{
				HotelName:    "Grand Stay Nairobi",
				RoomType:     "Deluxe King",
				NightlyPrice: 180,
			}),
		},
		Pricing:   models.PriceBreakdown{Total: 375},
		Currency:  "USD",
		PaymentID: "pay_123",
		Status:    "confirmed",
	}
}

func payloadsOf(t *testing.T, enq *fakeEnqueuer) []models.ConfirmationPayload {
	t.Helper()
	var out []models.ConfirmationPayload
	for _, task := range enq.tasks {
		require.Equal(t, tasks.TypeBookingConfirmation, task.Type())
		var p models.ConfirmationPayload
		require.NoError(t, json.Unmarshal(task.Payload(), &p))
		out = append(out, p)
	}
	return out
}

func TestDispatchFansOutToBothChannels(t *testing.T) {
	enq := &fakeEnqueuer{}
	svc := &DefaultNotificationService{Enqueuer: enq, Logger: zap.NewNop()}

	svc.DispatchBookingConfirmation(confirmedBooking())

	payloads := payloadsOf(t, enq)
	require.Len(t, payloads, 2)
	assert.Equal(t, models.ChannelEmail, payloads[0].Channel)
	assert.Equal(t, "ada@example.com", payloads[0].Recipient)
	assert.Equal(t, models.ChannelWhatsApp, payloads[1].Channel)
	assert.Equal(t, "+254700000001", payloads[1].Recipient)
	assert.Equal(t, "Grand Stay Nairobi", payloads[0].HotelName)
}

func TestDispatchSkipsUnreachableChannels(t *testing.T) {
	enq := &fakeEnqueuer{}
	svc := &DefaultNotificationService{Enqueuer: enq, Logger: zap.NewNop()}

	booking := confirmedBooking()
	booking.Guest.Phone = ""
	svc.DispatchBookingConfirmation(booking)

	payloads := payloadsOf(t, enq)
	require.Len(t, payloads, 1)
	assert.Equal(t, models.ChannelEmail, payloads[0].Channel)
}

func TestDispatchOneChannelFailureDoesNotBlockTheOther(t *testing.T) {
	enq := &fakeEnqueuer{failFor: models.ChannelEmail}
	svc := &DefaultNotificationService{Enqueuer: enq, Logger: zap.NewNop()}

	// Must not panic or propagate anything.
	svc.DispatchBookingConfirmation(confirmedBooking())

	payloads := payloadsOf(t, enq)
	require.Len(t, payloads, 1)
	assert.Equal(t, models.ChannelWhatsApp, payloads[0].Channel)
}
