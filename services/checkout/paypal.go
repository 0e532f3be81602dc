package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"grandstay/models"

	"github.com/plutov/paypal/v4"
	"go.uber.org/zap"
)

const GatewayPayPal = "paypal"

// PayPalGateway is the redirect-variant gateway. Order creation yields an
// approval URL; the guest leaves the page entirely and comes back with the
// provider's token and payer id.
type PayPalGateway struct {
	client    *paypal.Client
	returnURL string
	cancelURL string
	logger    *zap.Logger
}

// NewPayPalGateway builds the redirect gateway from API credentials.
func NewPayPalGateway(clientID, secret, apiBase, returnURL, cancelURL string, logger *zap.Logger) (*PayPalGateway, error) {
	client, err := paypal.NewClient(clientID, secret, apiBase)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize paypal client: %w", err)
	}
	return &PayPalGateway{
		client:    client,
		returnURL: returnURL,
		cancelURL: cancelURL,
		logger:    logger,
	}, nil
}

func (g *PayPalGateway) Name() string      { return GatewayPayPal }
func (g *PayPalGateway) Flow() GatewayFlow { return FlowRedirect }

// CreateOrder registers a payment intent and returns the approval URL the
// guest must be sent to. No approval URL means the order is unusable.
func (g *PayPalGateway) CreateOrder(ctx context.Context, amount int64, currency, reference string) (*models.Order, error) {
	if _, err := g.client.GetAccessToken(ctx); err != nil {
		return nil, fmt.Errorf("paypal auth failed: %w", err)
	}

	units := []paypal.PurchaseUnitRequest{
		{
			ReferenceID: reference,
			Amount: &paypal.PurchaseUnitAmount{
				Currency: currency,
				Value:    strconv.FormatInt(amount, 10),
			},
		},
	}
	appCtx := &paypal.ApplicationContext{
		ReturnURL: g.returnURL,
		CancelURL: g.cancelURL,
	}

	order, err := g.client.CreateOrder(ctx, paypal.OrderIntentCapture, units, nil, appCtx)
	if err != nil {
		return nil, fmt.Errorf("paypal order creation failed: %w", err)
	}

	var approvalURL string
	for _, link := range order.Links {
		if link.Rel == "approve" {
			approvalURL = link.Href
			break
		}
	}
	if approvalURL == "" {
		return nil, fmt.Errorf("paypal order %s has no approval link", order.ID)
	}

	g.logger.Info("PayPal order created",
		zap.String("orderId", order.ID),
		zap.Int64("amount", amount),
		zap.String("currency", currency))

	return &models.Order{
		OrderID:     order.ID,
		Gateway:     GatewayPayPal,
		Amount:      amount,
		Currency:    currency,
		ApprovalURL: approvalURL,
		Status:      models.OrderStatusCreated,
		CreatedAt:   time.Now(),
	}, nil
}

// CaptureApproved captures an order the payer approved on the provider's
// page. The resume token doubles as the provider order id.
func (g *PayPalGateway) CaptureApproved(ctx context.Context, token, payerID string) (*models.VerifiedPayment, error) {
	if _, err := g.client.GetAccessToken(ctx); err != nil {
		return nil, fmt.Errorf("paypal auth failed: %w", err)
	}

	resp, err := g.client.CaptureOrder(ctx, token, paypal.CaptureOrderRequest{})
	if err != nil {
		return nil, fmt.Errorf("paypal capture failed: %w", err)
	}

	var captureID string
	for _, unit := range resp.PurchaseUnits {
		if unit.Payments == nil {
			continue
		}
		for _, capture := range unit.Payments.Captures {
			captureID = capture.ID
			break
		}
	}

	if resp.Status != "COMPLETED" || captureID == "" {
		g.logger.Warn("PayPal capture not completed",
			zap.String("orderId", token),
			zap.String("payerId", payerID),
			zap.String("status", resp.Status))
		return &models.VerifiedPayment{
			ProviderPaymentID: captureID,
			ProviderOrderID:   token,
			Gateway:           GatewayPayPal,
			Success:           false,
			Reason:            fmt.Sprintf("capture not completed (status %q)", resp.Status),
		}, nil
	}

	return &models.VerifiedPayment{
		ProviderPaymentID: captureID,
		ProviderOrderID:   token,
		Gateway:           GatewayPayPal,
		Success:           true,
	}, nil
}
