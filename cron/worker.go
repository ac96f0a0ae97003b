package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"swiftmove/config"
	"swiftmove/services/confirmation"
	"swiftmove/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Notifier delivers a confirmation message to the customer. The concrete
// mail/SMS provider sits behind this interface.
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, payload confirmation.TaskPayload) error
}

// LogNotifier records deliveries in the application log. It stands in until
// a transactional mail provider is wired up.
type LogNotifier struct{}

// SendBookingConfirmation logs the delivery.
func (LogNotifier) SendBookingConfirmation(_ context.Context, payload confirmation.TaskPayload) error {
	utils.GetLogger().Info("confirmation delivered",
		zap.String("bookingId", payload.BookingID),
		zap.String("email", payload.Email),
		zap.String("date", payload.Date),
		zap.String("time", payload.Time))
	return nil
}

// InitConfirmationWorker runs the async worker in background.
func InitConfirmationWorker(notifier Notifier) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(confirmation.TypeConfirmationSend, handleConfirmationTask(notifier))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ConfirmationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(notifier Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p confirmation.TaskPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ConfirmationWorker] invalid payload: %v", err)
			return err
		}

		if err := notifier.SendBookingConfirmation(ctx, p); err != nil {
			log.Printf("[ConfirmationWorker] failed to deliver confirmation for booking %s: %v", p.BookingID, err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ConfirmationWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
