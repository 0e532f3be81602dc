package checkout

import (
	"context"
	"errors"
	"testing"

	"grandstay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeGateway plays either gateway role depending on flow.
type fakeGateway struct {
	name        string
	flow        GatewayFlow
	createErr   error
	verdict     *models.VerifiedPayment
	verifyErr   error
	lastCapture string
}

func (g *fakeGateway) Name() string      { return g.name }
func (g *fakeGateway) Flow() GatewayFlow { return g.flow }

func (g *fakeGateway) CreateOrder(ctx context.Context, amount int64, currency, reference string) (*models.Order, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	order := &models.Order{
		OrderID:  "order_987",
		Gateway:  g.name,
		Amount:   amount,
		Currency: currency,
		Status:   models.OrderStatusCreated,
	}
	if g.flow == FlowRedirect {
		order.ApprovalURL = "https://provider.example/approve/order_987"
	}
	return order, nil
}

func (g *fakeGateway) VerifyCapture(ctx context.Context, providerOrderID, providerPaymentID, signature string) (*models.VerifiedPayment, error) {
	return g.verdict, g.verifyErr
}

func (g *fakeGateway) CaptureApproved(ctx context.Context, token, payerID string) (*models.VerifiedPayment, error) {
	g.lastCapture = token
	return g.verdict, g.verifyErr
}

// memoryPendingStore keeps pending records in a map.
type memoryPendingStore struct {
	records map[string]*models.PendingRecoveryRecord
}

func newMemoryPendingStore() *memoryPendingStore {
	return &memoryPendingStore{records: make(map[string]*models.PendingRecoveryRecord)}
}

func (s *memoryPendingStore) Save(ctx context.Context, sessionID string, record models.PendingRecoveryRecord) error {
	s.records[sessionID] = &record
	return nil
}

func (s *memoryPendingStore) Snapshot(ctx context.Context, sessionID string, draft models.CheckoutDraft) error {
	if existing, ok := s.records[sessionID]; ok && existing.Source == "redirect" {
		return nil
	}
	s.records[sessionID] = &models.PendingRecoveryRecord{Draft: draft, Source: "unload"}
	return nil
}

func (s *memoryPendingStore) Load(ctx context.Context, sessionID string) (*models.PendingRecoveryRecord, error) {
	return s.records[sessionID], nil
}

func (s *memoryPendingStore) Clear(ctx context.Context, sessionID string) error {
	delete(s.records, sessionID)
	return nil
}

// fakeFailureRecorder collects recorded failures.
type fakeFailureRecorder struct {
	records []models.FailureRecord
}

func (r *fakeFailureRecorder) Record(providerOrderID, providerPaymentID, gateway, reason string, draft models.CheckoutDraft) {
	r.records = append(r.records, models.FailureRecord{
		ProviderOrderID:   providerOrderID,
		ProviderPaymentID: providerPaymentID,
		Gateway:           gateway,
		Reason:            reason,
		Guest:             draft.Guest,
		Amount:            draft.Pricing.Total,
		Currency:          draft.Currency,
	})
}

// fakeOrderRepo records created and abandoned orders.
type fakeOrderRepo struct {
	created   []*models.Order
	abandoned []string
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.created = append(r.created, order)
	return nil
}

func (r *fakeOrderRepo) GetByOrderID(orderID string) (*models.Order, error) {
	for _, o := range r.created {
		if o.OrderID == orderID {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderRepo) MarkAbandoned(orderID string) error {
	r.abandoned = append(r.abandoned, orderID)
	return nil
}

// fakeNotifier counts dispatches.
type fakeNotifier struct {
	dispatched []*models.Booking
}

func (n *fakeNotifier) DispatchBookingConfirmation(booking *models.Booking) {
	n.dispatched = append(n.dispatched, booking)
}

type orchestratorFixture struct {
	svc      *DefaultCheckoutService
	modal    *fakeGateway
	redirect *fakeGateway
	pending  *memoryPendingStore
	failures *fakeFailureRecorder
	orders   *fakeOrderRepo
	bookings *fakeBookingRepo
	notifier *fakeNotifier
}

func newOrchestratorFixture() *orchestratorFixture {
	modal := &fakeGateway{name: GatewayRazorpay, flow: FlowModal}
	redirect := &fakeGateway{name: GatewayPayPal, flow: FlowRedirect}
	pending := newMemoryPendingStore()
	failures := &fakeFailureRecorder{}
	orders := &fakeOrderRepo{}
	bookings := newFakeBookingRepo()
	notifier := &fakeNotifier{}

	svc := &DefaultCheckoutService{
		Gateways: map[string]PaymentGateway{
			GatewayRazorpay: modal,
			GatewayPayPal:   redirect,
		},
		Pending:      pending,
		Verifier:     &DefaultPaymentVerifier{Logger: zap.NewNop()},
		Materializer: &DefaultBookingMaterializer{Repo: bookings, Logger: zap.NewNop()},
		Failures:     failures,
		OrderRepo:    orders,
		Notifier:     notifier,
		Logger:       zap.NewNop(),
	}
	return &orchestratorFixture{
		svc: svc, modal: modal, redirect: redirect, pending: pending,
		failures: failures, orders: orders, bookings: bookings, notifier: notifier,
	}
}

func TestInitiateCheckoutRecomputesPricing(t *testing.T) {
	f := newOrchestratorFixture()
	draft := draftWith("room-1", "ada@example.com")
	draft.Nights = 2
	// Client-tampered totals must be ignored.
	draft.Pricing = models.PriceBreakdown{Total: 1}

	order, err := f.svc.InitiateCheckout(context.Background(), "sess-1", draft, GatewayRazorpay)
	require.NoError(t, err)
	assert.Equal(t, int64(375), order.Amount)
}

func TestInitiateCheckoutSavesPendingBeforeRedirect(t *testing.T) {
	f := newOrchestratorFixture()
	draft := draftWith("room-1", "ada@example.com")

	order, err := f.svc.InitiateCheckout(context.Background(), "sess-1", draft, GatewayPayPal)
	require.NoError(t, err)
	assert.NotEmpty(t, order.ApprovalURL)

	record := f.pending.records["sess-1"]
	require.NotNil(t, record)
	assert.Equal(t, "redirect", record.Source)
	assert.Equal(t, order.OrderID, record.Order.OrderID)
}

func TestInitiateCheckoutNoPendingOnOrderFailure(t *testing.T) {
	f := newOrchestratorFixture()
	f.redirect.createErr = errors.New("provider down")

	_, err := f.svc.InitiateCheckout(context.Background(), "sess-1", draftWith("room-1", "ada@example.com"), GatewayPayPal)
	assert.Error(t, err)
	assert.Empty(t, f.pending.records)
	assert.Empty(t, f.orders.created)
}

func TestInitiateCheckoutModalLeavesNoPendingRecord(t *testing.T) {
	f := newOrchestratorFixture()

	_, err := f.svc.InitiateCheckout(context.Background(), "sess-1", draftWith("room-1", "ada@example.com"), GatewayRazorpay)
	require.NoError(t, err)
	assert.Empty(t, f.pending.records)
}

func TestInitiateCheckoutRejectsUnknownGateway(t *testing.T) {
	f := newOrchestratorFixture()

	_, err := f.svc.InitiateCheckout(context.Background(), "sess-1", draftWith("room-1", "ada@example.com"), "bitcoin")
	assert.ErrorIs(t, err, ErrUnsupportedGateway)
}

func TestInitiateCheckoutValidatesDraft(t *testing.T) {
	f := newOrchestratorFixture()

	draft := draftWith("room-1", "ada@example.com")
	draft.Items = nil
	_, err := f.svc.InitiateCheckout(context.Background(), "sess-1", draft, GatewayRazorpay)
	assert.Error(t, err)

	draft = draftWith("room-1", "ada@example.com")
	draft.Guest.Phone = ""
	_, err = f.svc.InitiateCheckout(context.Background(), "sess-1", draft, GatewayRazorpay)
	assert.Error(t, err)
}

func TestCompleteModalPaymentSuccess(t *testing.T) {
	f := newOrchestratorFixture()
	f.modal.verdict = successVerdict()

	conf, err := f.svc.CompleteModalPayment(context.Background(), "sess-1",
		"order_123", "pay_123", "sig", draftWith("room-1", "ada@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "pay_123", conf.PaymentID)
	assert.Len(t, f.notifier.dispatched, 1)
	assert.Empty(t, f.failures.records)
}

func TestCompleteModalPaymentVerificationFailure(t *testing.T) {
	f := newOrchestratorFixture()
	f.modal.verdict = &models.VerifiedPayment{
		ProviderOrderID: "order_123",
		Gateway:         GatewayRazorpay,
		Success:         false,
		Reason:          "signature mismatch",
	}

	_, err := f.svc.CompleteModalPayment(context.Background(), "sess-1",
		"order_123", "pay_123", "bad-sig", draftWith("room-1", "ada@example.com"))
	assert.ErrorIs(t, err, ErrVerificationFailed)

	// No booking, no notification, one failure record.
	assert.Empty(t, f.bookings.byPaymentID)
	assert.Empty(t, f.notifier.dispatched)
	require.Len(t, f.failures.records, 1)
	assert.Equal(t, "signature mismatch", f.failures.records[0].Reason)
}

func TestCompleteModalPaymentTransportFailure(t *testing.T) {
	f := newOrchestratorFixture()
	f.modal.verifyErr = errors.New("connection reset")

	_, err := f.svc.CompleteModalPayment(context.Background(), "sess-1",
		"order_123", "pay_123", "sig", draftWith("room-1", "ada@example.com"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrVerificationFailed)

	assert.Empty(t, f.bookings.byPaymentID)
	require.Len(t, f.failures.records, 1)
}

func TestCancelModalPaymentRecordsCancellation(t *testing.T) {
	f := newOrchestratorFixture()

	f.svc.CancelModalPayment(context.Background(), "order_123", GatewayRazorpay, draftWith("room-1", "ada@example.com"))

	require.Len(t, f.failures.records, 1)
	assert.Equal(t, ReasonCancelledByUser, f.failures.records[0].Reason)
	assert.Equal(t, []string{"order_123"}, f.orders.abandoned)
}

func TestResumeRedirectPaymentSuccess(t *testing.T) {
	f := newOrchestratorFixture()
	f.redirect.verdict = &models.VerifiedPayment{
		ProviderPaymentID: "capture_1",
		ProviderOrderID:   "order_987",
		Gateway:           GatewayPayPal,
		Success:           true,
	}

	draft := draftWith("room-1", "ada@example.com")
	_, err := f.svc.InitiateCheckout(context.Background(), "sess-1", draft, GatewayPayPal)
	require.NoError(t, err)

	conf, err := f.svc.ResumeRedirectPayment(context.Background(), "sess-1", "order_987", "PAYER1")
	require.NoError(t, err)

	assert.Equal(t, "capture_1", conf.PaymentID)
	assert.Len(t, f.notifier.dispatched, 1)
	// Slot resolved.
	assert.Empty(t, f.pending.records)
}

func TestResumeRedirectPaymentWithoutPendingRecord(t *testing.T) {
	f := newOrchestratorFixture()

	_, err := f.svc.ResumeRedirectPayment(context.Background(), "sess-1", "order_987", "PAYER1")
	assert.ErrorIs(t, err, ErrPendingRecordMissing)

	require.Len(t, f.failures.records, 1)
	assert.Equal(t, ReasonPendingMissing, f.failures.records[0].Reason)
	assert.Empty(t, f.bookings.byPaymentID)
}

func TestResumeRedirectPaymentCaptureDeclined(t *testing.T) {
	f := newOrchestratorFixture()
	f.redirect.verdict = &models.VerifiedPayment{
		ProviderOrderID: "order_987",
		Gateway:         GatewayPayPal,
		Success:         false,
		Reason:          "capture not completed",
	}

	_, err := f.svc.InitiateCheckout(context.Background(), "sess-1", draftWith("room-1", "ada@example.com"), GatewayPayPal)
	require.NoError(t, err)

	_, err = f.svc.ResumeRedirectPayment(context.Background(), "sess-1", "order_987", "PAYER1")
	assert.ErrorIs(t, err, ErrVerificationFailed)

	assert.Empty(t, f.bookings.byPaymentID)
	assert.Empty(t, f.pending.records)
	require.Len(t, f.failures.records, 1)
}

func TestSnapshotDraftSkipsAnonymousDrafts(t *testing.T) {
	f := newOrchestratorFixture()

	draft := draftWith("room-1", "")
	draft.Guest = models.GuestInfo{}
	err := f.svc.SnapshotDraft(context.Background(), "sess-1", draft)
	require.NoError(t, err)
	assert.Empty(t, f.pending.records)

	err = f.svc.SnapshotDraft(context.Background(), "sess-1", draftWith("room-1", "ada@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, f.pending.records)
}
