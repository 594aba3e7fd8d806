package notification

import (
	"context"

	"tutorbase/models"
)

// NotificationService delivers booking notifications to parents and
// students. Delivery is asynchronous: callers enqueue, the mail worker
// calls this.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, payload models.ConfirmationEmailPayload) error
}
