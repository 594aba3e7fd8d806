package booking

import (
	"context"
	"fmt"
	"time"

	"tutorbase/config"
	"tutorbase/database/repository/tutors"
	"tutorbase/models"
	"tutorbase/services/calendar"
	"tutorbase/services/pricing"
	"tutorbase/services/scheduling"

	"go.uber.org/zap"
)

const calendarPendingMessage = "Calendar is being finalized. Your request will be confirmed after payment."

// horizon returns the [now, now+horizon) span every calendar query
// covers.
func (s *DefaultBookingService) horizon(now time.Time) (time.Time, time.Time) {
	return now, now.AddDate(0, 0, s.Policy.HorizonDays)
}

// fetchCalendars reads a fresh snapshot of the tutor's availability
// windows and booked blocks. Nothing is cached: every availability
// query and every commit attempt sees the calendars as they are right
// now, which is what makes commit-time re-validation meaningful.
// A failing bookings calendar degrades to "no known blocks" with a
// warning; a failing availability calendar is a hard error.
func (s *DefaultBookingService) fetchCalendars(ctx context.Context, tutor *models.Tutor, timeMin, timeMax time.Time) ([]models.AvailabilityWindow, []models.BookedBlock, error) {
	availEvents, err := s.Calendar.Events(ctx, tutor.AvailabilityCalendarID, timeMin, timeMax)
	if err != nil {
		return nil, nil, fmt.Errorf("fetching availability calendar: %w", err)
	}

	var blocks []models.BookedBlock
	if tutor.BookingsCalendarID != "" {
		bookingEvents, err := s.Calendar.Events(ctx, tutor.BookingsCalendarID, timeMin, timeMax)
		if err != nil {
			s.Logger.Warn("bookings calendar fetch failed, continuing without blocks",
				zap.String("tutorID", tutor.ID), zap.Error(err))
		} else {
			blocks = calendar.BookedBlocks(bookingEvents, s.Location)
		}
	}

	return calendar.AvailabilityWindows(availEvents, s.Location), blocks, nil
}

// AvailableSlots generates the bookable slots for a tutor over the
// configured horizon, dropping anything that starts inside the minimum
// lead time.
func (s *DefaultBookingService) AvailableSlots(ctx context.Context, tutorID string, sessionMinutes int) (*AvailabilityResult, error) {
	tutor, err := s.activeTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	if !tutor.CalendarConnected || tutor.AvailabilityCalendarID == "" {
		return &AvailabilityResult{
			Slots:                []string{},
			CalendarNotConnected: true,
			Message:              calendarPendingMessage,
		}, nil
	}

	now := time.Now()
	timeMin, timeMax := s.horizon(now)
	windows, blocks, err := s.fetchCalendars(ctx, tutor, timeMin, timeMax)
	if err != nil {
		return nil, err
	}

	slots := scheduling.GenerateSlotsWithTitles(windows, sessionMinutes, blocks)

	// Elapsed-time eligibility filter: never offer a slot starting
	// inside the minimum lead window. Distinct from the calendar-date
	// lead buckets pricing uses.
	return offeredSlots(slots, now.Add(s.Policy.MinLeadTime)), nil
}

// offeredSlots drops slots starting before earliest and formats the
// rest. Duplicate starts from different windows each keep their own
// title entry.
func offeredSlots(slots []models.Slot, earliest time.Time) *AvailabilityResult {
	result := &AvailabilityResult{
		Slots:      make([]string, 0, len(slots)),
		SlotTitles: make([]SlotOffer, 0, len(slots)),
	}
	for _, slot := range slots {
		if slot.Start.Before(earliest) {
			continue
		}
		iso := slot.Start.UTC().Format(time.RFC3339)
		result.Slots = append(result.Slots, iso)
		result.SlotTitles = append(result.SlotTitles, SlotOffer{Start: iso, Title: slot.Title})
	}
	return result
}

// tutorBaseRate resolves the hourly base rate for pricing: the tutor's
// own rate when set, otherwise the deployment default.
func tutorBaseRate(tutor *models.Tutor) *int {
	if tutor.BaseRateCents != nil {
		return tutor.BaseRateCents
	}
	if v := config.AppConfig.DefaultBaseRateCents; v > 0 && v != pricing.DefaultBaseRateCents {
		return &v
	}
	return nil
}

// activeTutor loads a tutor and rejects inactive profiles.
func (s *DefaultBookingService) activeTutor(ctx context.Context, tutorID string) (*models.Tutor, error) {
	tutor, err := s.TutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return nil, err
	}
	if !tutor.IsActive {
		// Inactive tutors are invisible to the booking flow.
		return nil, tutorsRepo.ErrTutorNotFound
	}
	return tutor, nil
}
