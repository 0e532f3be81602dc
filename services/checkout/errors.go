package checkout

import "fmt"

// CheckoutError is a terminal checkout failure with a stable code.
type CheckoutError struct {
	Code    string
	Message string
}

func (e *CheckoutError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrPendingRecordMissing means a payment return arrived with no pending
// recovery record. The guest may already have been charged, so this is not
// retryable; it routes to manual reconciliation.
var ErrPendingRecordMissing = &CheckoutError{
	Code:    "pendingRecordMissing",
	Message: "payment processing failed, contact support",
}

// ErrVerificationFailed means the backend could not confirm the provider's
// payment claim. No booking is created; the guest must restart checkout.
var ErrVerificationFailed = &CheckoutError{
	Code:    "verificationFailed",
	Message: "payment verification failed",
}

// ErrUnsupportedGateway means the requested payment gateway is not configured.
var ErrUnsupportedGateway = &CheckoutError{
	Code:    "unsupportedGateway",
	Message: "unsupported payment gateway",
}

func NewValidationError(msg string) error {
	return &CheckoutError{
		Code:    "invalidCheckout",
		Message: msg,
	}
}
