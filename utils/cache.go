// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"swiftmove/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionCacheClient holds in-progress quote wizard sessions.
	SessionCacheClient *redis.Client
	// DedupCacheClient backs the confirmation-send dedup window and the
	// promo attempt throttle.
	DedupCacheClient *redis.Client
	// CacheClient is the generic cache client (catalog reads and the like).
	CacheClient *redis.Client
)

func newClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (DB %d): %v", db, err)
	}
	return client
}

// InitSessionCache initializes the Redis client for quote sessions.
func InitSessionCache() {
	SessionCacheClient = newClient(config.AppConfig.RedisSessionDB)
}

// GetSessionCacheClient returns the quote session cache client.
func GetSessionCacheClient() *redis.Client {
	if SessionCacheClient == nil {
		InitSessionCache()
	}
	return SessionCacheClient
}

// InitDedupCache initializes the Redis client for dedup/throttle keys.
func InitDedupCache() {
	DedupCacheClient = newClient(config.AppConfig.RedisDedupDB)
}

// GetDedupCacheClient returns the dedup cache client.
func GetDedupCacheClient() *redis.Client {
	if DedupCacheClient == nil {
		InitDedupCache()
	}
	return DedupCacheClient
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newClient(config.AppConfig.RedisCacheDB)
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
