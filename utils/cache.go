package utils

import (
	"context"
	"log"
	"time"

	"boulderhub/config"

	"github.com/go-redis/redis/v8"
)

// SessionCacheClient holds booking sessions between requests. A cached
// session is the gateway's equivalent of one page view; it carries no
// durable state.
var SessionCacheClient *redis.Client

// InitSessionCache initializes the Redis client for the booking session cache.
func InitSessionCache() {
	SessionCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (session cache): %v", err)
	}
}

// GetSessionCacheClient returns the session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}
