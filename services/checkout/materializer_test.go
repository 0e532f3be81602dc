package checkout

import (
	"context"
	"testing"

	"grandstay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingRepo mimics the unique payment_id index: a second create for the
// same payment id returns the stored booking.
type fakeBookingRepo struct {
	byPaymentID map[string]*models.Booking
	creates     int
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byPaymentID: make(map[string]*models.Booking)}
}

func (r *fakeBookingRepo) Create(booking *models.Booking) (*models.Booking, error) {
	r.creates++
	if existing, ok := r.byPaymentID[booking.PaymentID]; ok {
		return existing, nil
	}
	r.byPaymentID[booking.PaymentID] = booking
	return booking, nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	for _, b := range r.byPaymentID {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) GetByPaymentID(paymentID string) (*models.Booking, error) {
	return r.byPaymentID[paymentID], nil
}

func (r *fakeBookingRepo) GetByGuestEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.byPaymentID {
		if b.Guest.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func successVerdict() *models.VerifiedPayment {
	return &models.VerifiedPayment{
		ProviderPaymentID: "pay_123",
		ProviderOrderID:   "order_123",
		Gateway:           GatewayRazorpay,
		Success:           true,
	}
}

func TestMaterializeCreatesBooking(t *testing.T) {
	repo := newFakeBookingRepo()
	m := &DefaultBookingMaterializer{Repo: repo, Logger: zap.NewNop()}

	draft := draftWith("room-1", "ada@example.com")
	draft.Pricing = ComputePricing(draft.Items, 2)

	booking, err := m.Materialize(context.Background(), successVerdict(), draft)
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "pay_123", booking.PaymentID)
	assert.Equal(t, "order_123", booking.OrderID)
	assert.Equal(t, "confirmed", booking.Status)
	assert.Equal(t, draft.Pricing.Total, booking.Pricing.Total)
}

func TestMaterializeIsIdempotentPerPaymentID(t *testing.T) {
	repo := newFakeBookingRepo()
	m := &DefaultBookingMaterializer{Repo: repo, Logger: zap.NewNop()}

	draft := draftWith("room-1", "ada@example.com")

	first, err := m.Materialize(context.Background(), successVerdict(), draft)
	require.NoError(t, err)
	second, err := m.Materialize(context.Background(), successVerdict(), draft)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.byPaymentID, 1)
	assert.Equal(t, 2, repo.creates)
}

func TestMaterializeRefusesUnverifiedPayment(t *testing.T) {
	repo := newFakeBookingRepo()
	m := &DefaultBookingMaterializer{Repo: repo, Logger: zap.NewNop()}

	_, err := m.Materialize(context.Background(), nil, draftWith("room-1", "ada@example.com"))
	assert.Error(t, err)

	failed := successVerdict()
	failed.Success = false
	_, err = m.Materialize(context.Background(), failed, draftWith("room-1", "ada@example.com"))
	assert.Error(t, err)

	assert.Empty(t, repo.byPaymentID)
}
