package utils

import (
	"context"
	"sync"
	"time"

	"swiftmove/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Mongo     bool      `json:"mongo"`
	Redis     []bool    `json:"redis"`
	CheckedAt time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func checkInterval() time.Duration {
	if sec := config.AppConfig.HealthCheckSec; sec > 0 {
		return time.Duration(sec) * time.Second
	}
	return 60 * time.Second
}

// StartHealthMonitor performs periodic health checks and updates in-memory
// state. The first check runs immediately so /health has data from startup.
func StartHealthMonitor(redisClients []*redis.Client, mongoClient *mongo.Client) {
	go func() {
		ctx := context.Background()
		checkHealth(ctx, redisClients, mongoClient)

		ticker := time.NewTicker(checkInterval())
		defer ticker.Stop()
		for range ticker.C {
			checkHealth(ctx, redisClients, mongoClient)
		}
	}()
}

func checkHealth(ctx context.Context, redisClients []*redis.Client, mongoClient *mongo.Client) {
	redisHealth := make([]bool, 0, len(redisClients))
	for _, client := range redisClients {
		redisHealth = append(redisHealth, client.Ping(ctx).Err() == nil)
	}
	mongoHealthy := mongoClient.Ping(ctx, nil) == nil

	mu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	mu.Unlock()
}
