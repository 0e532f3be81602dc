package middleware

import (
	"net/http"
	"strings"

	"grandstay/utils"

	"github.com/gin-gonic/gin"
)

// MemberAuthMiddleware authenticates member-only routes via the Bearer token
// issued at registration or sign in. The member id lands in the context under
// "memberID".
func MemberAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		memberID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || memberID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set("memberID", memberID)
		c.Next()
	}
}
