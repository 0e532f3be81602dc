package handlers

import (
	"net/http"

	"grandstay/models"
	"grandstay/services/notification"
	"grandstay/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Channel sinks, wired in main. Callers discard the acknowledgement; a
// delivery failure here is logged and answered, never propagated into
// booking state.
var (
	EmailChannel    notification.Channel
	WhatsAppChannel notification.Channel
)

// SendBookingConfirmationEmail delivers one confirmation email.
func SendBookingConfirmationEmail(c *gin.Context) {
	var payload models.ConfirmationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	payload.Channel = models.ChannelEmail

	if err := EmailChannel.Send(c.Request.Context(), payload); err != nil {
		utils.GetLogger().Error("confirmation email delivery failed",
			zap.String("bookingId", payload.BookingID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "email delivery failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

// SendWhatsAppMessage delivers one confirmation message over WhatsApp.
func SendWhatsAppMessage(c *gin.Context) {
	var payload models.ConfirmationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	payload.Channel = models.ChannelWhatsApp

	if err := WhatsAppChannel.Send(c.Request.Context(), payload); err != nil {
		utils.GetLogger().Error("whatsapp delivery failed",
			zap.String("bookingId", payload.BookingID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "whatsapp delivery failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}
