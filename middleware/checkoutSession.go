package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CheckoutSessionHeader carries the client's checkout session id. The id
// scopes the pending recovery slot, so every checkout route requires it.
const CheckoutSessionHeader = "X-Checkout-Session"

// CheckoutSessionMiddleware extracts the checkout session id into the context
// under "checkoutSessionID" and rejects requests without one.
func CheckoutSessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(CheckoutSessionHeader)
		if sessionID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "Missing " + CheckoutSessionHeader + " header",
			})
			return
		}
		c.Set("checkoutSessionID", sessionID)
		c.Next()
	}
}
