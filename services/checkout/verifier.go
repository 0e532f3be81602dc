package checkout

import (
	"context"
	"fmt"
	"time"

	"grandstay/models"

	"go.uber.org/zap"
)

// verifyTimeout bounds every verification and capture call so a hung provider
// never leaves the checkout busy indefinitely. Expiry surfaces as a transport
// error the guest can retry by re-attempting checkout.
const verifyTimeout = 30 * time.Second

// PaymentVerifier is the single source of truth for "did money actually
// move". A transport error fails closed: no booking, no automatic retry.
type PaymentVerifier interface {
	VerifyModalCapture(ctx context.Context, gateway PaymentGateway, providerOrderID, providerPaymentID, signature string) (*models.VerifiedPayment, error)
	CaptureRedirect(ctx context.Context, gateway PaymentGateway, token, payerID string) (*models.VerifiedPayment, error)
}

// DefaultPaymentVerifier implements PaymentVerifier over the gateway
// capability interfaces.
type DefaultPaymentVerifier struct {
	Logger *zap.Logger
}

// VerifyModalCapture confirms a modal gateway's capture callback. The
// callback parameters are untrusted until this returns a success verdict.
func (v *DefaultPaymentVerifier) VerifyModalCapture(ctx context.Context, gateway PaymentGateway, providerOrderID, providerPaymentID, signature string) (*models.VerifiedPayment, error) {
	verifier, ok := gateway.(CaptureVerifier)
	if !ok {
		return nil, fmt.Errorf("gateway %s does not support capture verification", gateway.Name())
	}

	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	verified, err := verifier.VerifyCapture(ctx, providerOrderID, providerPaymentID, signature)
	if err != nil {
		return nil, fmt.Errorf("payment verification transport failure: %w", err)
	}
	if !verified.Success {
		v.Logger.Warn("payment verification returned failure verdict",
			zap.String("orderId", providerOrderID),
			zap.String("reason", verified.Reason))
	}
	return verified, nil
}

// CaptureRedirect captures and confirms a redirect gateway's approved order.
func (v *DefaultPaymentVerifier) CaptureRedirect(ctx context.Context, gateway PaymentGateway, token, payerID string) (*models.VerifiedPayment, error) {
	capturer, ok := gateway.(RedirectCapturer)
	if !ok {
		return nil, fmt.Errorf("gateway %s does not support redirect capture", gateway.Name())
	}

	ctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	verified, err := capturer.CaptureApproved(ctx, token, payerID)
	if err != nil {
		return nil, fmt.Errorf("payment capture transport failure: %w", err)
	}
	if !verified.Success {
		v.Logger.Warn("redirect capture returned failure verdict",
			zap.String("token", token),
			zap.String("reason", verified.Reason))
	}
	return verified, nil
}
