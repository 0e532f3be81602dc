package handlers

import (
	"errors"
	"net/http"

	"grandstay/models"
	"grandstay/services/checkout"

	"github.com/gin-gonic/gin"
)

// CheckoutSvc is wired in main.
var CheckoutSvc checkout.CheckoutService

func sessionID(c *gin.Context) string {
	return c.GetString("checkoutSessionID")
}

// respondCheckoutError maps service errors to HTTP responses.
func respondCheckoutError(c *gin.Context, err error) {
	var cerr *checkout.CheckoutError
	if errors.As(err, &cerr) {
		switch cerr {
		case checkout.ErrPendingRecordMissing:
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Payment processing failed. Please contact support.", "code": cerr.Code})
		case checkout.ErrVerificationFailed:
			c.JSON(http.StatusPaymentRequired, gin.H{"error": cerr.Message, "code": cerr.Code})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": cerr.Message, "code": cerr.Code})
		}
		return
	}
	// Transport failures against the provider.
	c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable. Please try again."})
}

// CreateOrder opens a modal-gateway order for the draft.
func CreateOrder(c *gin.Context) {
	var draft models.CheckoutDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	order, err := CheckoutSvc.InitiateCheckout(c.Request.Context(), sessionID(c), draft, checkout.GatewayRazorpay)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// CreateProviderOrder opens a redirect-gateway order; the response carries the
// approval URL the client navigates to.
func CreateProviderOrder(c *gin.Context) {
	var draft models.CheckoutDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	order, err := CheckoutSvc.InitiateCheckout(c.Request.Context(), sessionID(c), draft, checkout.GatewayPayPal)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orderId":     order.OrderID,
		"approvalUrl": order.ApprovalURL,
	})
}

// CaptureProviderPayment resumes a redirect checkout from the provider's
// return parameters. Both parameters are required together; anything less is
// not a payment return and is acknowledged with no content.
func CaptureProviderPayment(c *gin.Context) {
	var input struct {
		Token   string `json:"token"`
		PayerID string `json:"payerId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Token == "" || input.PayerID == "" {
		c.Status(http.StatusNoContent)
		return
	}

	confirmation, err := CheckoutSvc.ResumeRedirectPayment(c.Request.Context(), sessionID(c), input.Token, input.PayerID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// VerifyPayment handles the modal widget's capture callback: verify the
// claimed payment and materialize the booking.
func VerifyPayment(c *gin.Context) {
	var input struct {
		OrderID   string               `json:"orderId" binding:"required"`
		PaymentID string               `json:"paymentId" binding:"required"`
		Signature string               `json:"signature" binding:"required"`
		Draft     models.CheckoutDraft `json:"draft"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmation, err := CheckoutSvc.CompleteModalPayment(c.Request.Context(), sessionID(c),
		input.OrderID, input.PaymentID, input.Signature, input.Draft)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// PaymentFailed is the sink for modal failure and dismissal callbacks. Both
// resolve the attempt without a booking; dismissal returns the checkout to an
// editable state, so neither is an error response.
func PaymentFailed(c *gin.Context) {
	var input struct {
		OrderID   string               `json:"orderId"`
		PaymentID string               `json:"paymentId"`
		Gateway   string               `json:"gateway"`
		Reason    string               `json:"reason"`
		Dismissed bool                 `json:"dismissed"`
		Draft     models.CheckoutDraft `json:"draft"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Gateway == "" {
		input.Gateway = checkout.GatewayRazorpay
	}

	if input.Dismissed {
		CheckoutSvc.CancelModalPayment(c.Request.Context(), input.OrderID, input.Gateway, input.Draft)
		c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
		return
	}

	CheckoutSvc.FailModalPayment(c.Request.Context(), input.OrderID, input.PaymentID, input.Gateway, input.Reason, input.Draft)
	c.JSON(http.StatusOK, gin.H{"status": "failed"})
}

// SnapshotDraft is the page-unload sink for opportunistic draft snapshots.
func SnapshotDraft(c *gin.Context) {
	var draft models.CheckoutDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := CheckoutSvc.SnapshotDraft(c.Request.Context(), sessionID(c), draft); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to snapshot draft"})
		return
	}
	c.Status(http.StatusNoContent)
}
