// File: grandstay/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grandstay/config"
	"grandstay/cron"
	"grandstay/database"
	bookingRepoPkg "grandstay/database/repository/booking"
	failureRepoPkg "grandstay/database/repository/failure"
	memberRepoPkg "grandstay/database/repository/member"
	orderRepoPkg "grandstay/database/repository/order"
	"grandstay/handlers"
	"grandstay/middleware"
	"grandstay/routes"
	"grandstay/services/checkout"
	"grandstay/services/member"
	"grandstay/services/notification"
	"grandstay/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	failureRepo := failureRepoPkg.NewMongoFailureRepo()
	orderRepo := orderRepoPkg.NewMongoOrderRepo()
	memberRepo := memberRepoPkg.NewMongoMemberRepo()

	// payment gateways.
	razorpayGateway := checkout.NewRazorpayGateway(
		config.AppConfig.RazorpayKeyID,
		config.AppConfig.RazorpayKeySecret,
		logger,
	)
	paypalGateway, err := checkout.NewPayPalGateway(
		config.AppConfig.PayPalClientID,
		config.AppConfig.PayPalSecret,
		config.AppConfig.PayPalAPIBase,
		config.AppConfig.PayPalReturnURL,
		config.AppConfig.PayPalCancelURL,
		logger,
	)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize paypal gateway: %v", err)
	}
	gateways := map[string]checkout.PaymentGateway{
		checkout.GatewayRazorpay: razorpayGateway,
		checkout.GatewayPayPal:   paypalGateway,
	}

	// notification fanout: enqueue through asynq, deliver in the worker.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	defer asynqClient.Close()

	emailChannel := &notification.EmailChannel{
		Host:     config.AppConfig.SMTPHost,
		Port:     config.AppConfig.SMTPPort,
		Username: config.AppConfig.SMTPUser,
		Password: config.AppConfig.SMTPPassword,
		From:     config.AppConfig.SMTPFrom,
		Logger:   logger,
	}
	whatsAppChannel := &notification.WhatsAppChannel{
		APIBase:       config.AppConfig.WhatsAppAPIBase,
		PhoneNumberID: config.AppConfig.WhatsAppPhoneNumberID,
		AccessToken:   config.AppConfig.WhatsAppAccessToken,
		HTTPClient:    &http.Client{Timeout: 15 * time.Second},
		Logger:        logger,
	}
	notificationService := &notification.DefaultNotificationService{
		Enqueuer: asynqClient,
		Logger:   logger,
	}
	cron.InitNotificationWorker([]notification.Channel{emailChannel, whatsAppChannel})

	// services.
	checkoutService := &checkout.DefaultCheckoutService{
		Gateways: gateways,
		Pending: &checkout.RedisPendingStore{
			Client: utils.GetCheckoutCacheClient(),
			Logger: logger,
		},
		Verifier: &checkout.DefaultPaymentVerifier{Logger: logger},
		Materializer: &checkout.DefaultBookingMaterializer{
			Repo:   bookingRepo,
			Logger: logger,
		},
		Failures: &checkout.DefaultFailureRecorder{
			Repo:   failureRepo,
			Logger: logger,
		},
		OrderRepo: orderRepo,
		Notifier:  notificationService,
		Logger:    logger,
	}
	memberService := &member.DefaultMemberService{
		Repo:   memberRepo,
		Logger: logger,
	}

	// handlers.
	handlers.CheckoutSvc = checkoutService
	handlers.BookingRepo = bookingRepo
	handlers.MemberSvc = memberService
	handlers.EmailChannel = emailChannel
	handlers.WhatsAppChannel = whatsAppChannel

	routes.RegisterRoutes(router)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
