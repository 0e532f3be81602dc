// models/payment.go
package models

import "time"

// VerifiedPayment is the backend's authoritative confirmation of a provider's
// payment claim. Created by the payment verifier; never mutated.
type VerifiedPayment struct {
	ProviderPaymentID string `bson:"provider_payment_id" json:"providerPaymentId"`
	ProviderOrderID   string `bson:"provider_order_id" json:"providerOrderId"`
	Gateway           string `bson:"gateway" json:"gateway"`
	Success           bool   `bson:"success" json:"success"`
	Reason            string `bson:"reason,omitempty" json:"reason,omitempty"` // set on a failure verdict
}

// FailureRecord is the audit trail for a checkout attempt that did not become
// a booking. It carries enough checkout context for a human to reconcile a
// provider-side charge during a dispute.
type FailureRecord struct {
	ID                string    `bson:"id" json:"id"`
	ProviderOrderID   string    `bson:"provider_order_id" json:"providerOrderId"`
	ProviderPaymentID string    `bson:"provider_payment_id,omitempty" json:"providerPaymentId,omitempty"`
	Gateway           string    `bson:"gateway,omitempty" json:"gateway,omitempty"`
	Reason            string    `bson:"reason" json:"reason"`
	Guest             GuestInfo `bson:"guest" json:"guest"`
	Amount            int64     `bson:"amount" json:"amount"`
	Currency          string    `bson:"currency" json:"currency"`
	CreatedAt         time.Time `bson:"created_at" json:"createdAt"`
}
