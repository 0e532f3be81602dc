// models/order.go
package models

import "time"

// Order statuses. An order is immutable once created; a cancelled checkout
// leaves it abandoned rather than deleting it.
const (
	OrderStatusCreated   = "created"
	OrderStatusAbandoned = "abandoned"
)

// Order is a provider-side payment intent created before the guest pays.
type Order struct {
	OrderID     string    `bson:"order_id" json:"orderId"` // provider order id
	Gateway     string    `bson:"gateway" json:"gateway"`
	Amount      int64     `bson:"amount" json:"amount"`
	Currency    string    `bson:"currency" json:"currency"`
	ApprovalURL string    `bson:"approval_url,omitempty" json:"approvalUrl,omitempty"` // redirect gateway only
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
}
