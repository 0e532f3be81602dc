package notification

import (
	"context"
	"fmt"

	"grandstay/models"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// EmailChannel delivers booking confirmations over SMTP.
type EmailChannel struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Logger   *zap.Logger
}

func (c *EmailChannel) Name() models.NotificationChannel { return models.ChannelEmail }

// Send renders and delivers the confirmation email.
func (c *EmailChannel) Send(ctx context.Context, payload models.ConfirmationPayload) error {
	msg := mail.NewMsg()
	if err := msg.From(c.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(payload.Recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("Your Grand Stay booking %s is confirmed", payload.BookingID))
	msg.SetBodyString(mail.TypeTextPlain, renderConfirmationBody(payload))

	client, err := mail.NewClient(c.Host,
		mail.WithPort(c.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(c.Username),
		mail.WithPassword(c.Password),
	)
	if err != nil {
		return fmt.Errorf("failed to build smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}

	c.Logger.Info("confirmation email sent",
		zap.String("bookingId", payload.BookingID),
		zap.String("to", payload.Recipient))
	return nil
}

func renderConfirmationBody(p models.ConfirmationPayload) string {
	body := fmt.Sprintf("Dear %s,\n\nYour booking is confirmed.\n\nBooking ID: %s\nPayment ID: %s\n",
		p.GuestName, p.BookingID, p.PaymentID)
	if p.HotelName != "" {
		body += fmt.Sprintf("Hotel: %s\nRoom: %s\nCheck-in: %s\nCheck-out: %s\nNights: %d\nGuests: %d\n",
			p.HotelName, p.RoomType, p.CheckIn, p.CheckOut, p.Nights, p.Guests)
	}
	body += fmt.Sprintf("Total: %d %s\n\nWe look forward to welcoming you.\nThe Grand Stay", p.Total, p.Currency)
	return body
}
