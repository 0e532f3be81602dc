package checkout

import (
	"context"
	"fmt"
	"time"

	"grandstay/models"

	razorpay "github.com/razorpay/razorpay-go"
	razorpayUtils "github.com/razorpay/razorpay-go/utils"
	"go.uber.org/zap"
)

const GatewayRazorpay = "razorpay"

// RazorpayGateway is the modal-variant gateway. The confirmation widget runs
// in-page; the storefront reports its terminal callback over HTTP.
type RazorpayGateway struct {
	client    *razorpay.Client
	keySecret string
	logger    *zap.Logger
}

// NewRazorpayGateway builds the modal gateway from API credentials.
func NewRazorpayGateway(keyID, keySecret string, logger *zap.Logger) *RazorpayGateway {
	return &RazorpayGateway{
		client:    razorpay.NewClient(keyID, keySecret),
		keySecret: keySecret,
		logger:    logger,
	}
}

func (g *RazorpayGateway) Name() string      { return GatewayRazorpay }
func (g *RazorpayGateway) Flow() GatewayFlow { return FlowModal }

// CreateOrder registers a payment intent with Razorpay. Amounts are held in
// whole currency units internally; Razorpay wants the smallest subunit.
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, reference string) (*models.Order, error) {
	data := map[string]interface{}{
		"amount":   amount * 100,
		"currency": currency,
		"receipt":  reference,
	}
	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order creation failed: %w", err)
	}

	orderID, ok := body["id"].(string)
	if !ok || orderID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	g.logger.Info("Razorpay order created",
		zap.String("orderId", orderID),
		zap.Int64("amount", amount),
		zap.String("currency", currency))

	return &models.Order{
		OrderID:   orderID,
		Gateway:   GatewayRazorpay,
		Amount:    amount,
		Currency:  currency,
		Status:    models.OrderStatusCreated,
		CreatedAt: time.Now(),
	}, nil
}

// VerifyCapture is the authoritative check of a claimed capture: the HMAC
// signature must match, and the payment must be confirmed captured by the
// provider itself. The client-observed callback is untrusted until both pass.
func (g *RazorpayGateway) VerifyCapture(ctx context.Context, providerOrderID, providerPaymentID, signature string) (*models.VerifiedPayment, error) {
	params := map[string]interface{}{
		"razorpay_order_id":   providerOrderID,
		"razorpay_payment_id": providerPaymentID,
	}
	if !razorpayUtils.VerifyPaymentSignature(params, signature, g.keySecret) {
		g.logger.Warn("Razorpay signature mismatch",
			zap.String("orderId", providerOrderID),
			zap.String("paymentId", providerPaymentID))
		return &models.VerifiedPayment{
			ProviderPaymentID: providerPaymentID,
			ProviderOrderID:   providerOrderID,
			Gateway:           GatewayRazorpay,
			Success:           false,
			Reason:            "payment signature mismatch",
		}, nil
	}

	payment, err := g.client.Payment.Fetch(providerPaymentID, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay payment fetch failed: %w", err)
	}

	status, _ := payment["status"].(string)
	if status != "captured" && status != "authorized" {
		return &models.VerifiedPayment{
			ProviderPaymentID: providerPaymentID,
			ProviderOrderID:   providerOrderID,
			Gateway:           GatewayRazorpay,
			Success:           false,
			Reason:            fmt.Sprintf("payment not captured (status %q)", status),
		}, nil
	}

	return &models.VerifiedPayment{
		ProviderPaymentID: providerPaymentID,
		ProviderOrderID:   providerOrderID,
		Gateway:           GatewayRazorpay,
		Success:           true,
	}, nil
}
