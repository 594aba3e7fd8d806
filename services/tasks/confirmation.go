package tasks

import (
	"context"
	"encoding/json"

	"tutorbase/models"

	"github.com/hibiken/asynq"
)

const TypeConfirmationSend = "confirmation:send"

// NewConfirmationTask wraps a confirmation payload as an asynq task.
func NewConfirmationTask(payload models.ConfirmationEmailPayload) (*asynq.Task, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeConfirmationSend, b), nil
}

// Enqueuer pushes mail tasks onto the Redis-backed queue.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer builds an enqueuer on the mail queue Redis DB.
func NewEnqueuer(opts asynq.RedisClientOpt) *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(opts)}
}

// EnqueueConfirmation schedules a confirmation email for delivery.
func (e *Enqueuer) EnqueueConfirmation(ctx context.Context, payload models.ConfirmationEmailPayload) error {
	task, err := NewConfirmationTask(payload)
	if err != nil {
		return err
	}
	_, err = e.client.EnqueueContext(ctx, task, asynq.MaxRetry(5))
	return err
}

// Close releases the underlying client.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}
