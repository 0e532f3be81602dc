// models/notification.go
package models

// NotificationChannel names one of the two independent confirmation channels.
type NotificationChannel string

const (
	ChannelEmail    NotificationChannel = "email"
	ChannelWhatsApp NotificationChannel = "whatsapp"
)

// ConfirmationPayload is the task payload for a booking-confirmation dispatch
// on one channel. Its delivery outcome is never part of booking state.
type ConfirmationPayload struct {
	Channel   NotificationChannel `json:"channel"`
	BookingID string              `json:"bookingId"`
	PaymentID string              `json:"paymentId"`
	GuestName string              `json:"guestName"`
	Recipient string              `json:"recipient"` // email address or phone number
	HotelName string              `json:"hotelName,omitempty"`
	RoomType  string              `json:"roomType,omitempty"`
	CheckIn   string              `json:"checkIn,omitempty"`
	CheckOut  string              `json:"checkOut,omitempty"`
	Nights    int                 `json:"nights,omitempty"`
	Guests    int                 `json:"guests,omitempty"`
	Total     int64               `json:"total"`
	Currency  string              `json:"currency"`
}
