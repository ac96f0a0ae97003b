package confirmation

import (
	"context"
	"time"

	"swiftmove/utils"

	"github.com/go-redis/redis/v8"
)

// RedisDedupStore implements the dedup window with SET NX + TTL. The gate is
// shared by every tab, browser and device that hits this backend.
type RedisDedupStore struct {
	Client *redis.Client
	Window time.Duration
}

// NewRedisDedupStore returns a DedupStore with the standard 5-minute window.
func NewRedisDedupStore(client *redis.Client) *RedisDedupStore {
	return &RedisDedupStore{Client: client, Window: utils.ConfirmationDedupWindow}
}

func (s *RedisDedupStore) key(bookingID string) string {
	return utils.ConfirmationDedupPrefix + bookingID
}

// Acquire claims the send slot for a booking. It returns false when a send
// already happened inside the window.
func (s *RedisDedupStore) Acquire(ctx context.Context, bookingID string) (bool, error) {
	return s.Client.SetNX(ctx, s.key(bookingID), time.Now().Unix(), s.Window).Result()
}

// Release frees the slot, used when enqueueing the delivery failed after the
// slot was claimed.
func (s *RedisDedupStore) Release(ctx context.Context, bookingID string) error {
	return s.Client.Del(ctx, s.key(bookingID)).Err()
}
