package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorbase/models"
	"tutorbase/services/calendar"
	"tutorbase/services/pricing"
	"tutorbase/services/scheduling"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrInvalidSessionLength rejects anything but 60-minute sessions and
// 15-minute consultations.
var ErrInvalidSessionLength = errors.New("invalid sessionLength: must be 60 or 15")

// CreateBooking commits a previously offered slot. The calendars are
// re-fetched and the slot re-validated immediately before the write:
// between the offer and this call anything may have happened, and the
// re-check turns a double booking into an ordinary 409 rejection with
// no partial state.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.BookingConfirmation, error) {
	tutor, err := s.activeTutor(ctx, req.TutorID)
	if err != nil {
		return nil, err
	}

	if req.SessionLength != models.SessionLengthFull && req.SessionLength != models.SessionLengthConsultation {
		return nil, ErrInvalidSessionLength
	}

	start, err := time.Parse(time.RFC3339, req.StartTimeISO)
	if err != nil {
		return nil, fmt.Errorf("invalid startTimeISO: %w", err)
	}
	end := start.Add(time.Duration(req.SessionLength) * time.Minute)
	bookingID := uuid.New().String()

	// Calendar not wired up yet: park the request for manual
	// confirmation rather than failing the parent.
	if !tutor.CalendarConnected || tutor.AvailabilityCalendarID == "" || tutor.BookingsCalendarID == "" {
		s.Logger.Info("calendar not connected, booking requires manual confirmation",
			zap.String("tutorID", tutor.ID), zap.String("bookingID", bookingID))
		s.recordBooking(ctx, bookingID, tutor, req, start, end, "", models.BookingStatusPending, 0)
		return &models.BookingConfirmation{
			BookingID:            bookingID,
			CalendarNotConnected: true,
			Message:              calendarPendingMessage,
		}, nil
	}

	// Serialize commits per tutor. The re-validation below is still the
	// real guard; the lock just keeps two commits from interleaving
	// between re-fetch and write on a healthy deployment.
	release, err := s.acquireCommitLock(ctx, tutor.ID)
	if err != nil {
		return nil, err
	}
	defer release()

	now := time.Now()
	timeMin, timeMax := s.horizon(now)
	windows, blocks, err := s.fetchCalendars(ctx, tutor, timeMin, timeMax)
	if err != nil {
		return nil, err
	}

	candidate, err := models.NewInterval(start, end)
	if err != nil {
		return nil, err
	}
	if err := scheduling.ValidateCommit(candidate, windows, blocks); err != nil {
		return nil, err
	}

	priceCents := pricing.SessionPriceCents(req.SessionLength, models.PricingInput{
		Start:         start,
		CalendarTitle: windowTitleFor(start, windows),
		BaseRateCents: tutorBaseRate(tutor),
		Now:           now,
	})

	eventID, err := s.createBookingEvents(ctx, tutor, req, bookingID, start, end)
	if err != nil {
		return nil, err
	}

	s.recordBooking(ctx, bookingID, tutor, req, start, end, eventID, models.BookingStatusPending, priceCents)

	if s.Mail != nil {
		payload := models.ConfirmationEmailPayload{
			BookingID:    bookingID,
			TutorName:    tutor.DisplayName,
			ParentName:   req.ParentName,
			ParentEmail:  req.ParentEmail,
			StudentName:  req.StudentName,
			StudentEmail: req.StudentEmail,
			StartTime:    start,
			EndTime:      end,
			ZoomLink:     tutor.ZoomLink,
		}
		if err := s.Mail.EnqueueConfirmation(ctx, payload); err != nil {
			s.Logger.Warn("failed to enqueue confirmation email",
				zap.String("bookingID", bookingID), zap.Error(err))
		}
	}

	s.Logger.Info("booking committed",
		zap.String("bookingID", bookingID),
		zap.String("tutorID", tutor.ID),
		zap.Time("start", start),
		zap.Int("priceCents", priceCents))

	return &models.BookingConfirmation{BookingID: bookingID}, nil
}

// createBookingEvents writes the booking into the tutor's bookings
// calendar with invites, then mirrors it silently into the availability
// calendar so future slot generation sees the block from either side.
func (s *DefaultBookingService) createBookingEvents(ctx context.Context, tutor *models.Tutor, req models.BookingRequest, bookingID string, start, end time.Time) (string, error) {
	input := calendar.EventInput{
		Summary:     eventSummary(req),
		Description: eventDescription(tutor, req, bookingID),
		Start:       start,
		End:         end,
		BookingID:   bookingID,
		SendInvites: true,
	}
	if req.ParentEmail != "" {
		input.Attendees = append(input.Attendees, calendar.Attendee{
			Email:       req.ParentEmail,
			DisplayName: req.ParentName,
		})
	}
	if req.StudentEmail != "" && req.StudentEmail != req.ParentEmail {
		input.Attendees = append(input.Attendees, calendar.Attendee{
			Email:       req.StudentEmail,
			DisplayName: req.StudentName,
		})
	}

	eventID, err := s.Calendar.CreateEvent(ctx, tutor.BookingsCalendarID, input)
	if err != nil {
		return "", fmt.Errorf("creating booking event: %w", err)
	}

	mirror := input
	mirror.Attendees = nil
	mirror.SendInvites = false
	if _, err := s.Calendar.CreateEvent(ctx, tutor.AvailabilityCalendarID, mirror); err != nil {
		// The committed booking stands; the mirror is a convenience
		// copy for tutors who only watch their availability calendar.
		s.Logger.Warn("failed to mirror booking into availability calendar",
			zap.String("bookingID", bookingID), zap.Error(err))
	}

	return eventID, nil
}

// recordBooking appends the booking trace; a store failure is logged
// and swallowed because the calendar write already succeeded and the
// record is derived, not authoritative.
func (s *DefaultBookingService) recordBooking(ctx context.Context, bookingID string, tutor *models.Tutor, req models.BookingRequest, start, end time.Time, eventID, status string, priceCents int) {
	record := models.BookingRecord{
		ID:              bookingID,
		TutorID:         tutor.ID,
		TutorName:       tutor.DisplayName,
		SessionLength:   req.SessionLength,
		StartTime:       start,
		EndTime:         end,
		ParentName:      req.ParentName,
		ParentEmail:     req.ParentEmail,
		StudentName:     req.StudentName,
		StudentEmail:    req.StudentEmail,
		Grade:           req.Grade,
		Course:          req.Course,
		HelpText:        req.HelpText,
		PriceCents:      priceCents,
		Status:          status,
		CreatedAt:       time.Now(),
		CalendarEventID: eventID,
	}
	if _, err := s.RecordsRepo.Create(ctx, record); err != nil {
		s.Logger.Error("failed to persist booking record",
			zap.String("bookingID", bookingID), zap.Error(err))
	}
}

func eventSummary(req models.BookingRequest) string {
	if req.SessionLength == models.SessionLengthConsultation {
		return fmt.Sprintf("Tutorbase Consultation — %s", req.StudentName)
	}
	return fmt.Sprintf("Tutorbase Session — %s (%dm)", req.StudentName, req.SessionLength)
}

func eventDescription(tutor *models.Tutor, req models.BookingRequest, bookingID string) string {
	desc := fmt.Sprintf("Booking ID: %s\n\n", bookingID)
	desc += fmt.Sprintf("Student: %s\n", req.StudentName)
	desc += fmt.Sprintf("Student Email: %s\n", req.StudentEmail)
	desc += fmt.Sprintf("Parent: %s\n", req.ParentName)
	desc += fmt.Sprintf("Parent Email: %s\n", req.ParentEmail)
	if req.Grade != "" {
		desc += fmt.Sprintf("Grade: %s\n", req.Grade)
	}
	if req.Course != "" {
		desc += fmt.Sprintf("Course: %s\n", req.Course)
	}
	desc += "\n"
	if req.HelpText != "" {
		desc += fmt.Sprintf("What they need help with:\n%s\n\n", req.HelpText)
	}
	if req.MaterialsLink != "" {
		desc += fmt.Sprintf("Materials Link: %s\n\n", req.MaterialsLink)
	}
	if req.FileNames != "" {
		desc += fmt.Sprintf("Uploaded Files: %s\n\n", req.FileNames)
	}
	if tutor.ZoomLink != "" {
		desc += fmt.Sprintf("Zoom Meeting Link:\n%s\n", tutor.ZoomLink)
	} else {
		desc += "Zoom link will be emailed.\n"
	}
	return desc
}

// windowTitleFor finds the title of the first window containing the
// start instant; pricing defaults to a neutral rating when none does.
func windowTitleFor(start time.Time, windows []models.AvailabilityWindow) string {
	for _, w := range windows {
		if w.Contains(start) {
			return w.Title
		}
	}
	return ""
}

// Quote prices a 60-minute session at the given start, resolving the
// pricing label from the tutor's placeholder title or, failing that,
// the availability window around the start.
func (s *DefaultBookingService) Quote(ctx context.Context, tutorID string, start time.Time) (*models.PricingQuote, error) {
	tutor, err := s.activeTutor(ctx, tutorID)
	if err != nil {
		return nil, err
	}

	title := tutor.CalendarTitleForPricing
	if title == "" && tutor.AvailabilityCalendarID != "" {
		// Look a day either side of the start for the owning window.
		events, err := s.Calendar.Events(ctx, tutor.AvailabilityCalendarID, start.AddDate(0, 0, -1), start.AddDate(0, 0, 1))
		if err != nil {
			s.Logger.Warn("could not fetch calendar title for pricing",
				zap.String("tutorID", tutor.ID), zap.Error(err))
		} else {
			title = windowTitleFor(start, calendar.AvailabilityWindows(events, s.Location))
		}
	}

	quote := pricing.HourlyPriceCents(models.PricingInput{
		Start:         start,
		CalendarTitle: title,
		BaseRateCents: tutorBaseRate(tutor),
	})
	return &quote, nil
}
