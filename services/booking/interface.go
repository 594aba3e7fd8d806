package booking

import (
	"context"
	"time"

	"tutorbase/database/repository/bookings"
	"tutorbase/database/repository/tutors"
	"tutorbase/models"
	"tutorbase/services/calendar"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	gcal "google.golang.org/api/calendar/v3"
)

// SlotOffer pairs an offered start instant (UTC RFC3339) with the
// title of the window it was cut from, for client-side price previews.
// Kept as a list, not a map: two windows can offer the same instant
// under different titles and both offers survive.
type SlotOffer struct {
	Start string `json:"start"`
	Title string `json:"title,omitempty"`
}

// AvailabilityResult is the availability query response.
type AvailabilityResult struct {
	Slots                []string    `json:"slots"`
	SlotTitles           []SlotOffer `json:"slotTitles,omitempty"`
	CalendarNotConnected bool        `json:"calendarNotConnected,omitempty"`
	Message              string      `json:"message,omitempty"`
}

// Service is the booking orchestration layer: it owns the calendar
// client handle and policy knobs, and drives the scheduling and pricing
// engines against fresh calendar snapshots.
type Service interface {
	AvailableSlots(ctx context.Context, tutorID string, sessionMinutes int) (*AvailabilityResult, error)
	Quote(ctx context.Context, tutorID string, start time.Time) (*models.PricingQuote, error)
	CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error)
}

// Policy holds the orchestration-level booking constants. They bound
// calendar queries and filter offers; the scheduling core itself never
// reads them.
type Policy struct {
	HorizonDays int           // how far ahead availability is queried
	MinLeadTime time.Duration // slots starting sooner than this are never offered
}

// CalendarSource is the slice of the calendar client the booking
// service consumes. *calendar.Client satisfies it; tests substitute
// their own.
type CalendarSource interface {
	Events(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*gcal.Event, error)
	CreateEvent(ctx context.Context, calendarID string, in calendar.EventInput) (string, error)
}

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Calendar    CalendarSource
	TutorRepo   tutorsRepo.TutorRepository
	RecordsRepo bookingsRepo.BookingRecordRepository
	LockClient  *redis.Client
	Mail        MailEnqueuer
	Policy      Policy
	Location    *time.Location
	Logger      *zap.Logger
}

// MailEnqueuer hands confirmation mail off to the async worker.
type MailEnqueuer interface {
	EnqueueConfirmation(ctx context.Context, payload models.ConfirmationEmailPayload) error
}
