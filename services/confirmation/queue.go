package confirmation

import (
	"context"
	"encoding/json"
	"fmt"

	"swiftmove/models"

	"github.com/hibiken/asynq"
)

// TypeConfirmationSend is the asynq task type for confirmation deliveries.
const TypeConfirmationSend = "confirmation:send"

// TaskPayload is the confirmation delivery job.
type TaskPayload struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Time      string `json:"time"`
}

// AsynqQueue enqueues confirmation deliveries onto the asynq-backed queue.
type AsynqQueue struct {
	Client *asynq.Client
}

// NewAsynqQueue returns a Queue on the given asynq client.
func NewAsynqQueue(client *asynq.Client) *AsynqQueue {
	return &AsynqQueue{Client: client}
}

// EnqueueConfirmation queues a delivery job for the booking.
func (q *AsynqQueue) EnqueueConfirmation(ctx context.Context, booking *models.Booking) error {
	payload := TaskPayload{
		BookingID: booking.ID,
		Date:      booking.Date,
		Time:      booking.Time,
	}
	if booking.Contact != nil {
		payload.Email = booking.Contact.Email
		payload.Name = booking.Contact.Name
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal confirmation payload: %w", err)
	}
	_, err = q.Client.EnqueueContext(ctx, asynq.NewTask(TypeConfirmationSend, data))
	return err
}
