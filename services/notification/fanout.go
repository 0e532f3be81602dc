package notification

import (
	"grandstay/models"
	"grandstay/services/tasks"

	"go.uber.org/zap"
)

// DefaultNotificationService fans a booking confirmation out to the email and
// WhatsApp channels by enqueueing one task per channel. Each enqueue failure
// is logged and discarded; the booking is already confirmed and the guest's
// navigation to the success page never waits on this.
type DefaultNotificationService struct {
	Enqueuer TaskEnqueuer
	Logger   *zap.Logger
}

// DispatchBookingConfirmation enqueues one confirmation per reachable channel.
func (s *DefaultNotificationService) DispatchBookingConfirmation(booking *models.Booking) {
	for _, payload := range buildPayloads(booking) {
		task, opts, err := tasks.NewBookingConfirmationTask(payload)
		if err != nil {
			s.Logger.Error("failed to build confirmation task",
				zap.String("channel", string(payload.Channel)),
				zap.String("bookingId", booking.ID),
				zap.Error(err))
			continue
		}
		if _, err := s.Enqueuer.Enqueue(task, opts...); err != nil {
			s.Logger.Error("failed to enqueue confirmation",
				zap.String("channel", string(payload.Channel)),
				zap.String("bookingId", booking.ID),
				zap.Error(err))
			continue
		}
		s.Logger.Info("confirmation enqueued",
			zap.String("channel", string(payload.Channel)),
			zap.String("bookingId", booking.ID))
	}
}

// buildPayloads renders one payload per channel the guest is reachable on.
func buildPayloads(booking *models.Booking) []models.ConfirmationPayload {
	base := models.ConfirmationPayload{
		BookingID: booking.ID,
		PaymentID: booking.PaymentID,
		GuestName: booking.Guest.Name,
		CheckIn:   booking.CheckIn,
		CheckOut:  booking.CheckOut,
		Nights:    booking.Nights,
		Guests:    booking.Guests,
		Total:     booking.Pricing.Total,
		Currency:  booking.Currency,
	}
	for _, item := range booking.Items {
		if item.Kind == models.ServiceKindRoom && item.Room != nil {
			base.HotelName = item.Room.HotelName
			base.RoomType = item.Room.RoomType
			break
		}
	}

	var payloads []models.ConfirmationPayload
	if booking.Guest.Email != "" {
		p := base
		p.Channel = models.ChannelEmail
		p.Recipient = booking.Guest.Email
		payloads = append(payloads, p)
	}
	if booking.Guest.Phone != "" {
		p := base
		p.Channel = models.ChannelWhatsApp
		p.Recipient = booking.Guest.Phone
		payloads = append(payloads, p)
	}
	return payloads
}
