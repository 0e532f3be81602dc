package checkout

import (
	"context"

	"grandstay/models"
)

// GatewayFlow distinguishes the two provider interaction shapes.
type GatewayFlow string

const (
	// FlowModal opens an in-page confirmation widget within the same page
	// lifetime; capture, failure and dismissal arrive as callbacks.
	FlowModal GatewayFlow = "modal"
	// FlowRedirect transfers control to an external approval page; the flow
	// resumes on a later request carrying the provider's return parameters.
	FlowRedirect GatewayFlow = "redirect"
)

// PaymentGateway is the uniform interface over both provider integration
// styles. Checkout logic never branches on which provider is active; the
// modal/redirect distinction lives inside the implementations.
type PaymentGateway interface {
	Name() string
	Flow() GatewayFlow
	// CreateOrder registers a payment intent with the provider. For redirect
	// gateways the returned order carries the approval URL.
	CreateOrder(ctx context.Context, amount int64, currency, reference string) (*models.Order, error)
}

// CaptureVerifier is implemented by modal gateways: it checks a claimed
// capture's signature and confirms the payment with the provider.
type CaptureVerifier interface {
	VerifyCapture(ctx context.Context, providerOrderID, providerPaymentID, signature string) (*models.VerifiedPayment, error)
}

// RedirectCapturer is implemented by redirect gateways: it captures an order
// the payer approved on the provider's page.
type RedirectCapturer interface {
	CaptureApproved(ctx context.Context, token, payerID string) (*models.VerifiedPayment, error)
}
