package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"grandstay/models"

	"go.uber.org/zap"
)

// WhatsAppChannel delivers booking confirmations through the WhatsApp Cloud
// API messages endpoint.
type WhatsAppChannel struct {
	APIBase       string
	PhoneNumberID string
	AccessToken   string
	HTTPClient    *http.Client
	Logger        *zap.Logger
}

func (c *WhatsAppChannel) Name() models.NotificationChannel { return models.ChannelWhatsApp }

type whatsAppMessage struct {
	MessagingProduct string           `json:"messaging_product"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             whatsAppTextBody `json:"text"`
}

type whatsAppTextBody struct {
	Body string `json:"body"`
}

// Send posts a text confirmation to the guest's WhatsApp number.
func (c *WhatsAppChannel) Send(ctx context.Context, payload models.ConfirmationPayload) error {
	msg := whatsAppMessage{
		MessagingProduct: "whatsapp",
		To:               payload.Recipient,
		Type:             "text",
		Text:             whatsAppTextBody{Body: renderWhatsAppBody(payload)},
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp message: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.APIBase, c.PhoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)

	client := c.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("whatsapp send rejected: status %d: %s", resp.StatusCode, string(body))
	}

	c.Logger.Info("confirmation whatsapp sent",
		zap.String("bookingId", payload.BookingID),
		zap.String("to", payload.Recipient))
	return nil
}

func renderWhatsAppBody(p models.ConfirmationPayload) string {
	body := fmt.Sprintf("🏨 Booking Confirmed!\n\nDear %s, your reservation is confirmed.\nBooking ID: %s\n", p.GuestName, p.BookingID)
	if p.HotelName != "" {
		body += fmt.Sprintf("Hotel: %s (%s)\nCheck-in: %s, Check-out: %s\n", p.HotelName, p.RoomType, p.CheckIn, p.CheckOut)
	}
	body += fmt.Sprintf("Total: %d %s\n\nThe Grand Stay", p.Total, p.Currency)
	return body
}
