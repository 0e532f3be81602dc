package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisCheckoutDB    int    `mapstructure:"REDIS_CHECKOUT_DB"`
	RedisNotifyQueueDB int    `mapstructure:"REDIS_NOTIFY_QUEUE_DB"`

	// Razorpay (modal gateway).
	RazorpayKeyID     string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `mapstructure:"RAZORPAY_KEY_SECRET"`

	// PayPal (redirect gateway).
	PayPalClientID  string `mapstructure:"PAYPAL_CLIENT_ID"`
	PayPalSecret    string `mapstructure:"PAYPAL_SECRET"`
	PayPalAPIBase   string `mapstructure:"PAYPAL_API_BASE"`
	PayPalReturnURL string `mapstructure:"PAYPAL_RETURN_URL"`
	PayPalCancelURL string `mapstructure:"PAYPAL_CANCEL_URL"`

	// Stripe (membership purchases).
	StripeKey string `mapstructure:"STRIPE_KEY"`

	// SMTP for the email notification channel.
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
	SMTPFrom     string `mapstructure:"SMTP_FROM"`

	// WhatsApp Cloud API for the WhatsApp notification channel.
	WhatsAppAPIBase       string `mapstructure:"WHATSAPP_API_BASE"`
	WhatsAppPhoneNumberID string `mapstructure:"WHATSAPP_PHONE_NUMBER_ID"`
	WhatsAppAccessToken   string `mapstructure:"WHATSAPP_ACCESS_TOKEN"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CHECKOUT_DB", 0)
	viper.SetDefault("REDIS_NOTIFY_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("PAYPAL_API_BASE", "https://api-m.sandbox.paypal.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("WHATSAPP_API_BASE", "https://graph.facebook.com/v19.0")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
