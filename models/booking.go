package models

import "time"

// Booking represents a confirmed reservation record.
type Booking struct {
	ID        string         `bson:"id" json:"id"`                   // Unique booking identifier (UUID)
	Guest     GuestInfo      `bson:"guest" json:"guest"`             // Guest who paid
	Items     []ServiceItem  `bson:"items" json:"items"`             // Booked service line items
	CheckIn   string         `bson:"check_in,omitempty" json:"checkIn,omitempty"`
	CheckOut  string         `bson:"check_out,omitempty" json:"checkOut,omitempty"`
	Guests    int            `bson:"guests,omitempty" json:"guests,omitempty"`
	Nights    int            `bson:"nights,omitempty" json:"nights,omitempty"`
	Pricing   PriceBreakdown `bson:"pricing" json:"pricing"`
	Currency  string         `bson:"currency" json:"currency"`
	PaymentID string         `bson:"payment_id" json:"paymentId"` // provider payment id, unique per booking
	OrderID   string         `bson:"order_id" json:"orderId"`     // provider order id
	Gateway   string         `bson:"gateway" json:"gateway"`
	MemberID  string         `bson:"member_id,omitempty" json:"memberId,omitempty"`
	Status    string         `bson:"status" json:"status"` // e.g., "confirmed"
	CreatedAt time.Time      `bson:"created_at" json:"createdAt"`
}

// BookingConfirmationResponse represents the final response returned after a
// checkout completes.
type BookingConfirmationResponse struct {
	BookingID    string    `bson:"bookingId" json:"bookingId"`
	PaymentID    string    `bson:"paymentId" json:"paymentId"`
	Gateway      string    `bson:"gateway" json:"gateway"`
	Total        int64     `bson:"total" json:"total"`
	Currency     string    `bson:"currency" json:"currency"`
	Confirmation string    `bson:"confirmation" json:"confirmation"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
