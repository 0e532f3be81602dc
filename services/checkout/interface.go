package checkout

import (
	"context"

	"grandstay/database/repository"
	"grandstay/models"
	"grandstay/services/notification"

	"go.uber.org/zap"
)

// CheckoutService defines the interface for the payment-orchestrated checkout
// flow across both gateway variants.
type CheckoutService interface {
	// InitiateCheckout prices the draft and creates the provider order. For a
	// redirect gateway the pending recovery record is written before the
	// approval URL is handed out.
	InitiateCheckout(ctx context.Context, sessionID string, draft models.CheckoutDraft, gatewayName string) (*models.Order, error)
	// CompleteModalPayment handles the modal widget's capture callback:
	// verify, materialize, dispatch notifications.
	CompleteModalPayment(ctx context.Context, sessionID, providerOrderID, providerPaymentID, signature string, draft models.CheckoutDraft) (*models.BookingConfirmationResponse, error)
	// FailModalPayment records a provider-reported modal failure.
	FailModalPayment(ctx context.Context, providerOrderID, providerPaymentID, gatewayName, reason string, draft models.CheckoutDraft)
	// CancelModalPayment records the guest dismissing the modal without paying.
	CancelModalPayment(ctx context.Context, providerOrderID, gatewayName string, draft models.CheckoutDraft)
	// ResumeRedirectPayment resumes a redirect checkout from the provider's
	// return parameters: load pending, capture, materialize, dispatch.
	ResumeRedirectPayment(ctx context.Context, sessionID, token, payerID string) (*models.BookingConfirmationResponse, error)
	// SnapshotDraft opportunistically persists a partial draft on page unload.
	SnapshotDraft(ctx context.Context, sessionID string, draft models.CheckoutDraft) error
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	Gateways     map[string]PaymentGateway
	Pending      PendingStore
	Verifier     PaymentVerifier
	Materializer BookingMaterializer
	Failures     FailureRecorder
	OrderRepo    repository.OrderRepository
	Notifier     notification.NotificationService
	Logger       *zap.Logger
}
