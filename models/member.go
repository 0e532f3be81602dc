// models/member.go
package models

import "time"

// Member is a registered guest with a Royal Rewards membership.
type Member struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Tier         string    `bson:"tier" json:"tier"` // e.g., "Gold", "Platinum"
	MembershipID string    `bson:"membership_id,omitempty" json:"membershipId,omitempty"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// MemberRegistration is the signup payload.
type MemberRegistration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

// MemberCredentials is the login payload.
type MemberCredentials struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// MembershipPurchase records a paid membership tier upgrade.
type MembershipPurchase struct {
	ID              string    `bson:"id" json:"id"`
	MemberID        string    `bson:"member_id" json:"memberId"`
	Tier            string    `bson:"tier" json:"tier"`
	Amount          int64     `bson:"amount" json:"amount"`
	Currency        string    `bson:"currency" json:"currency"`
	PaymentIntentID string    `bson:"payment_intent_id" json:"paymentIntentId"`
	Status          string    `bson:"status" json:"status"` // mirrors the Stripe intent status
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
}
