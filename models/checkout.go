// models/checkout.go
package models

import "time"

// GuestInfo identifies the person paying for a checkout.
type GuestInfo struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone" json:"phone"`
}

// PriceBreakdown is the computed pricing of a checkout draft. All amounts are
// integer currency units; tax and service charge are each rounded independently
// before summing.
type PriceBreakdown struct {
	Subtotal      int64 `bson:"subtotal" json:"subtotal"`
	Tax           int64 `bson:"tax" json:"tax"`
	ServiceCharge int64 `bson:"service_charge" json:"serviceCharge"`
	Total         int64 `bson:"total" json:"total"`
}

// CheckoutDraft is the in-progress, unsubmitted checkout state. It is never
// persisted on its own; the pending recovery store snapshots it when control
// is about to leave the page.
type CheckoutDraft struct {
	Guest    GuestInfo      `bson:"guest" json:"guest"`
	Items    []ServiceItem  `bson:"items" json:"items"`
	CheckIn  string         `bson:"check_in,omitempty" json:"checkIn,omitempty"`   // "YYYY-MM-DD"
	CheckOut string         `bson:"check_out,omitempty" json:"checkOut,omitempty"` // "YYYY-MM-DD"
	Guests   int            `bson:"guests,omitempty" json:"guests,omitempty"`
	Nights   int            `bson:"nights,omitempty" json:"nights,omitempty"`
	Currency string         `bson:"currency" json:"currency"`
	Pricing  PriceBreakdown `bson:"pricing" json:"pricing"`
	MemberID string         `bson:"member_id,omitempty" json:"memberId,omitempty"`
}

// PendingRecoveryRecord is a durable snapshot of an in-flight checkout, written
// just before a redirect-gateway navigation or opportunistically on page unload.
type PendingRecoveryRecord struct {
	ID      string        `json:"id"`
	Draft   CheckoutDraft `json:"draft"`
	Order   *Order        `json:"order,omitempty"`
	Source  string        `json:"source"` // "redirect" or "unload"
	SavedAt time.Time     `json:"savedAt"`
}
