package checkout

import (
	"context"
	"fmt"

	"grandstay/database/repository"
	"grandstay/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// BookingMaterializer turns a verified payment plus checkout state into the
// one canonical booking record for that payment identity.
type BookingMaterializer interface {
	Materialize(ctx context.Context, verified *models.VerifiedPayment, draft models.CheckoutDraft) (*models.Booking, error)
}

// DefaultBookingMaterializer implements BookingMaterializer on the booking
// repository, whose unique payment_id index enforces at-most-one booking per
// provider payment id.
type DefaultBookingMaterializer struct {
	Repo   repository.BookingRepository
	Logger *zap.Logger
}

// Materialize creates the booking. It must only be called with a success
// verdict; a duplicate call for the same payment id resolves to the existing
// booking instead of creating a second one.
func (m *DefaultBookingMaterializer) Materialize(ctx context.Context, verified *models.VerifiedPayment, draft models.CheckoutDraft) (*models.Booking, error) {
	if verified == nil || !verified.Success {
		return nil, fmt.Errorf("refusing to materialize booking without a verified payment")
	}

	booking := &models.Booking{
		ID:        uuid.New().String(),
		Guest:     draft.Guest,
		Items:     draft.Items,
		CheckIn:   draft.CheckIn,
		CheckOut:  draft.CheckOut,
		Guests:    draft.Guests,
		Nights:    draft.Nights,
		Pricing:   draft.Pricing,
		Currency:  draft.Currency,
		PaymentID: verified.ProviderPaymentID,
		OrderID:   verified.ProviderOrderID,
		Gateway:   verified.Gateway,
		MemberID:  draft.MemberID,
		Status:    "confirmed",
	}

	stored, err := m.Repo.Create(booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	if stored.ID != booking.ID {
		m.Logger.Info("booking already existed for payment, returning original",
			zap.String("paymentId", verified.ProviderPaymentID),
			zap.String("bookingId", stored.ID))
	}
	return stored, nil
}
