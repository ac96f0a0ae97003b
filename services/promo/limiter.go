package promo

import (
	"context"

	"swiftmove/utils"

	"github.com/go-redis/redis/v8"
)

// MaxAttempts is the number of failed applications tolerated per booking
// inside the throttle window.
const MaxAttempts = 5

// RedisAttemptLimiter counts failed promo attempts per booking in Redis.
type RedisAttemptLimiter struct {
	Client *redis.Client
}

// NewRedisAttemptLimiter returns an AttemptLimiter on the given client.
func NewRedisAttemptLimiter(client *redis.Client) *RedisAttemptLimiter {
	return &RedisAttemptLimiter{Client: client}
}

func (l *RedisAttemptLimiter) key(bookingID string) string {
	return utils.PromoAttemptPrefix + bookingID
}

// TooManyAttempts reports whether the booking has exhausted its attempts.
func (l *RedisAttemptLimiter) TooManyAttempts(ctx context.Context, bookingID string) (bool, error) {
	count, err := l.Client.Get(ctx, l.key(bookingID)).Int()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return count >= MaxAttempts, nil
}

// RecordFailure bumps the failure counter, starting the window on first use.
func (l *RedisAttemptLimiter) RecordFailure(ctx context.Context, bookingID string) error {
	count, err := l.Client.Incr(ctx, l.key(bookingID)).Result()
	if err != nil {
		return err
	}
	if count == 1 {
		return l.Client.Expire(ctx, l.key(bookingID), utils.PromoAttemptWindow).Err()
	}
	return nil
}
