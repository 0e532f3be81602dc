package routes

import (
	"net/http"
	"time"

	"grandstay/handlers"
	"grandstay/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCheckoutRoutes sets up the payment-orchestrated checkout endpoints.
// Every route is scoped to a checkout session via the X-Checkout-Session header.
func RegisterCheckoutRoutes(r *gin.Engine) {
	api := r.Group("/api/checkout")
	{
		api.Use(middleware.CheckoutSessionMiddleware())
		api.POST("/orders", handlers.CreateOrder)
		api.POST("/provider-orders", handlers.CreateProviderOrder)
		api.POST("/provider-orders/capture", handlers.CaptureProviderPayment)
		api.POST("/payments/verify", handlers.VerifyPayment)
		api.POST("/payments/failed", handlers.PaymentFailed)
		api.POST("/drafts/snapshot", handlers.SnapshotDraft)
	}
}

// RegisterBookingRoutes sets up the booking read endpoints.
func RegisterBookingRoutes(r *gin.Engine) {
	api := r.Group("/api/bookings")
	{
		api.GET("/:id", handlers.GetBooking)
		api.GET("", handlers.ListBookings)
	}
}

// RegisterNotificationRoutes sets up the confirmation channel sinks.
func RegisterNotificationRoutes(r *gin.Engine) {
	api := r.Group("/api/notifications")
	{
		api.POST("/email/booking-confirmation", handlers.SendBookingConfirmationEmail)
		api.POST("/whatsapp/send", handlers.SendWhatsAppMessage)
	}
}

// RegisterMemberRoutes sets up Royal Rewards membership endpoints.
func RegisterMemberRoutes(r *gin.Engine) {
	api := r.Group("/api/members")
	{
		api.POST("/register", handlers.RegisterMember)
		api.POST("/login", handlers.LoginMember)

		// Protected routes (Require Authentication)
		api.Use(middleware.MemberAuthMiddleware())
		api.GET("/me", handlers.GetMemberProfile)
		api.POST("/membership/purchase", handlers.PurchaseMembership)
		api.POST("/membership/confirm", handlers.ConfirmMembership)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm GrandStay"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", middleware.CheckoutSessionHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCheckoutRoutes(r)
	RegisterBookingRoutes(r)
	RegisterNotificationRoutes(r)
	RegisterMemberRoutes(r)
	RegisterHealthRoute(r)
}
