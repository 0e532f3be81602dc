// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"grandstay/config"

	"github.com/go-redis/redis/v8"
)

// CheckoutCacheClient is the dedicated client for checkout state (pending
// recovery slots and session data).
var CheckoutCacheClient *redis.Client

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	InitCheckoutCache()
}

// InitCheckoutCache initializes the Redis client for checkout state.
func InitCheckoutCache() {
	CheckoutCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCheckoutDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CheckoutCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Checkout Cache): %v", err)
	}
}

// GetCheckoutCacheClient returns the Redis client for checkout state.
func GetCheckoutCacheClient() *redis.Client {
	if CheckoutCacheClient == nil {
		InitCheckoutCache()
	}
	return CheckoutCacheClient
}
