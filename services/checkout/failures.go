package checkout

import (
	"grandstay/database/repository"
	"grandstay/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Failure reasons reused across the flow.
const (
	ReasonCancelledByUser = "cancelled by user"
	ReasonPendingMissing  = "payment return with no pending checkout record"
)

// FailureRecorder persists failed or cancelled checkout attempts as the audit
// trail for payment disputes. Recording is best-effort from the caller's view:
// a failing write is logged, never surfaced.
type FailureRecorder interface {
	Record(providerOrderID, providerPaymentID, gateway, reason string, draft models.CheckoutDraft)
}

// DefaultFailureRecorder implements FailureRecorder on the failure repository.
type DefaultFailureRecorder struct {
	Repo   repository.FailureRepository
	Logger *zap.Logger
}

// Record captures the provider ids and enough checkout context (guest
// identity, intended amount) for a human to reconcile a provider-side charge
// that has no corresponding booking.
func (r *DefaultFailureRecorder) Record(providerOrderID, providerPaymentID, gateway, reason string, draft models.CheckoutDraft) {
	record := &models.FailureRecord{
		ID:                uuid.New().String(),
		ProviderOrderID:   providerOrderID,
		ProviderPaymentID: providerPaymentID,
		Gateway:           gateway,
		Reason:            reason,
		Guest:             draft.Guest,
		Amount:            draft.Pricing.Total,
		Currency:          draft.Currency,
	}

	if err := r.Repo.Create(record); err != nil {
		r.Logger.Error("failed to persist failure record",
			zap.String("orderId", providerOrderID),
			zap.String("reason", reason),
			zap.Error(err))
		return
	}

	r.Logger.Info("payment failure recorded",
		zap.String("orderId", providerOrderID),
		zap.String("paymentId", providerPaymentID),
		zap.String("reason", reason))
}
