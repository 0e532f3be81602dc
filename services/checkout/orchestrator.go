package checkout

import (
	"context"
	"fmt"
	"time"

	"grandstay/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateCheckout validates and prices the draft, then creates the provider
// order. For the redirect gateway the pending recovery record is written
// before the approval URL is returned, so navigation can never happen without
// a matching record; if order creation fails nothing is written and the guest
// stays on the checkout page with an inline error.
func (s *DefaultCheckoutService) InitiateCheckout(ctx context.Context, sessionID string, draft models.CheckoutDraft, gatewayName string) (*models.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	gateway, ok := s.Gateways[gatewayName]
	if !ok {
		return nil, ErrUnsupportedGateway
	}

	// The server-side recompute is authoritative; client-supplied totals are
	// never charged as-is.
	draft.Pricing = ComputePricing(draft.Items, draft.Nights)

	reference := uuid.New().String()
	order, err := gateway.CreateOrder(ctx, draft.Pricing.Total, draft.Currency, reference)
	if err != nil {
		return nil, fmt.Errorf("order creation failed: %w", err)
	}

	if err := s.OrderRepo.Create(order); err != nil {
		// The provider order exists but we could not record it; fail the
		// checkout before any money can move against an untracked order.
		return nil, fmt.Errorf("failed to record order: %w", err)
	}

	if gateway.Flow() == FlowRedirect {
		record := models.PendingRecoveryRecord{
			Draft:   draft,
			Order:   order,
			Source:  "redirect",
			SavedAt: time.Now(),
		}
		if err := s.Pending.Save(ctx, sessionID, record); err != nil {
			return nil, fmt.Errorf("failed to save pending checkout before redirect: %w", err)
		}
	}

	s.Logger.Info("checkout initiated",
		zap.String("sessionId", sessionID),
		zap.String("gateway", gatewayName),
		zap.String("orderId", order.OrderID),
		zap.Int64("total", draft.Pricing.Total))

	return order, nil
}

// CompleteModalPayment handles the modal widget's onCaptured callback:
// verify the claim, materialize exactly one booking, fan out notifications.
func (s *DefaultCheckoutService) CompleteModalPayment(ctx context.Context, sessionID, providerOrderID, providerPaymentID, signature string, draft models.CheckoutDraft) (*models.BookingConfirmationResponse, error) {
	gateway, ok := s.Gateways[GatewayRazorpay]
	if !ok {
		return nil, ErrUnsupportedGateway
	}

	draft.Pricing = ComputePricing(draft.Items, draft.Nights)

	verified, err := s.Verifier.VerifyModalCapture(ctx, gateway, providerOrderID, providerPaymentID, signature)
	if err != nil {
		// Fail closed: no booking, no automatic retry. Retry is the guest
		// re-attempting checkout.
		s.Failures.Record(providerOrderID, providerPaymentID, gateway.Name(),
			fmt.Sprintf("verification transport failure: %v", err), draft)
		return nil, err
	}
	if !verified.Success {
		s.Failures.Record(providerOrderID, providerPaymentID, gateway.Name(), verified.Reason, draft)
		return nil, ErrVerificationFailed
	}

	return s.finalize(ctx, sessionID, verified, draft)
}

// FailModalPayment records a provider-reported failure from the modal's
// onFailed callback. Terminal for this attempt.
func (s *DefaultCheckoutService) FailModalPayment(ctx context.Context, providerOrderID, providerPaymentID, gatewayName, reason string, draft models.CheckoutDraft) {
	if reason == "" {
		reason = "payment failed"
	}
	s.Failures.Record(providerOrderID, providerPaymentID, gatewayName, reason, draft)
}

// CancelModalPayment records the guest closing the modal without paying. The
// order stays behind as abandoned; the checkout form returns to an editable
// state, so this is not an error from the guest's point of view.
func (s *DefaultCheckoutService) CancelModalPayment(ctx context.Context, providerOrderID, gatewayName string, draft models.CheckoutDraft) {
	s.Failures.Record(providerOrderID, "", gatewayName, ReasonCancelledByUser, draft)
	if err := s.OrderRepo.MarkAbandoned(providerOrderID); err != nil {
		s.Logger.Warn("failed to mark order abandoned",
			zap.String("orderId", providerOrderID), zap.Error(err))
	}
}

// ResumeRedirectPayment resumes a redirect checkout from the provider's
// return parameters. A missing pending record is terminal: the provider may
// already have captured funds with no local trace, so the guest is told
// processing failed rather than invited to retry.
func (s *DefaultCheckoutService) ResumeRedirectPayment(ctx context.Context, sessionID, token, payerID string) (*models.BookingConfirmationResponse, error) {
	record, err := s.Pending.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load pending checkout: %w", err)
	}
	if record == nil || record.Order == nil {
		s.Logger.Error("payment return with no pending record",
			zap.String("sessionId", sessionID),
			zap.String("token", token))
		s.Failures.Record(token, "", GatewayPayPal, ReasonPendingMissing, models.CheckoutDraft{})
		return nil, ErrPendingRecordMissing
	}

	gateway, ok := s.Gateways[record.Order.Gateway]
	if !ok {
		return nil, ErrUnsupportedGateway
	}

	verified, err := s.Verifier.CaptureRedirect(ctx, gateway, token, payerID)
	if err != nil {
		s.Failures.Record(token, "", gateway.Name(),
			fmt.Sprintf("capture transport failure: %v", err), record.Draft)
		return nil, err
	}
	if !verified.Success {
		s.Failures.Record(token, verified.ProviderPaymentID, gateway.Name(), verified.Reason, record.Draft)
		// A failed capture resolves the pending attempt either way.
		_ = s.Pending.Clear(ctx, sessionID)
		return nil, ErrVerificationFailed
	}

	return s.finalize(ctx, sessionID, verified, record.Draft)
}

// SnapshotDraft persists a best-effort crash-recovery draft on page unload,
// but only once the guest has entered something identifying.
func (s *DefaultCheckoutService) SnapshotDraft(ctx context.Context, sessionID string, draft models.CheckoutDraft) error {
	if draft.Guest.Name == "" && draft.Guest.Email == "" && draft.Guest.Phone == "" {
		return nil
	}
	draft.Pricing = ComputePricing(draft.Items, draft.Nights)
	return s.Pending.Snapshot(ctx, sessionID, draft)
}

// finalize is the shared tail of both variants: one booking per verified
// payment, pending slot cleared, notifications fanned out without being
// awaited.
func (s *DefaultCheckoutService) finalize(ctx context.Context, sessionID string, verified *models.VerifiedPayment, draft models.CheckoutDraft) (*models.BookingConfirmationResponse, error) {
	booking, err := s.Materializer.Materialize(ctx, verified, draft)
	if err != nil {
		s.Failures.Record(verified.ProviderOrderID, verified.ProviderPaymentID, verified.Gateway,
			fmt.Sprintf("booking materialization failed: %v", err), draft)
		return nil, fmt.Errorf("booking materialization failed: %w", err)
	}

	if err := s.Pending.Clear(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear pending slot after booking",
			zap.String("sessionId", sessionID), zap.Error(err))
	}

	// Best-effort; confirmation must never be held hostage by courtesy
	// notifications.
	s.Notifier.DispatchBookingConfirmation(booking)

	s.Logger.Info("booking confirmed",
		zap.String("bookingId", booking.ID),
		zap.String("paymentId", booking.PaymentID),
		zap.String("gateway", booking.Gateway))

	return &models.BookingConfirmationResponse{
		BookingID:    booking.ID,
		PaymentID:    booking.PaymentID,
		Gateway:      booking.Gateway,
		Total:        booking.Pricing.Total,
		Currency:     booking.Currency,
		Confirmation: "Booking confirmed",
		CreatedAt:    booking.CreatedAt,
	}, nil
}

// validateDraft rejects drafts that cannot be charged.
func validateDraft(draft models.CheckoutDraft) error {
	if len(draft.Items) == 0 {
		return NewValidationError("checkout has no service items")
	}
	if draft.Guest.Name == "" || draft.Guest.Email == "" || draft.Guest.Phone == "" {
		return NewValidationError("guest name, email and phone are required")
	}
	if draft.Currency == "" {
		return NewValidationError("currency is required")
	}
	return nil
}
