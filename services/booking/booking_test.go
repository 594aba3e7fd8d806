package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tutorbase/models"
)

func TestWindowTitleFor(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	windows := []models.AvailabilityWindow{
		{Interval: models.Interval{Start: day.Add(9 * time.Hour), End: day.Add(12 * time.Hour)}, Title: "Available (3)"},
		{Interval: models.Interval{Start: day.Add(14 * time.Hour), End: day.Add(16 * time.Hour)}, Title: "Willingness 8"},
	}

	assert.Equal(t, "Available (3)", windowTitleFor(day.Add(10*time.Hour), windows))
	assert.Equal(t, "Willingness 8", windowTitleFor(day.Add(14*time.Hour), windows), "window start is inclusive")
	assert.Equal(t, "", windowTitleFor(day.Add(12*time.Hour), windows), "window end is exclusive")
	assert.Equal(t, "", windowTitleFor(day.Add(13*time.Hour), windows))
}

func TestOfferedSlotsKeepsDuplicateStartsWithTheirOwnTitles(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	slots := []models.Slot{
		{Start: day.Add(9 * time.Hour), Title: "Available (3)"},
		{Start: day.Add(9 * time.Hour), Title: "Willingness 8"}, // same instant, other window
		{Start: day.Add(14 * time.Hour), Title: "Available"},
	}

	result := offeredSlots(slots, day)

	assert.Equal(t, []string{
		"2026-03-10T09:00:00Z",
		"2026-03-10T09:00:00Z",
		"2026-03-10T14:00:00Z",
	}, result.Slots)
	assert.Equal(t, []SlotOffer{
		{Start: "2026-03-10T09:00:00Z", Title: "Available (3)"},
		{Start: "2026-03-10T09:00:00Z", Title: "Willingness 8"},
		{Start: "2026-03-10T14:00:00Z", Title: "Available"},
	}, result.SlotTitles)
}

func TestOfferedSlotsDropsStartsInsideMinimumLead(t *testing.T) {
	day := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	slots := []models.Slot{
		{Start: day.Add(9 * time.Hour)},
		{Start: day.Add(10 * time.Hour)},
	}

	result := offeredSlots(slots, day.Add(10*time.Hour))

	assert.Equal(t, []string{"2026-03-10T10:00:00Z"}, result.Slots, "earliest boundary itself stays offered")
}

func TestEventSummary(t *testing.T) {
	full := models.BookingRequest{StudentName: "Sam Lee", SessionLength: models.SessionLengthFull}
	consult := models.BookingRequest{StudentName: "Sam Lee", SessionLength: models.SessionLengthConsultation}

	assert.Equal(t, "Tutorbase Session — Sam Lee (60m)", eventSummary(full))
	assert.Equal(t, "Tutorbase Consultation — Sam Lee", eventSummary(consult))
}

func TestEventDescriptionIncludesRequestDetails(t *testing.T) {
	tutor := &models.Tutor{DisplayName: "Lauren Chen", ZoomLink: "https://zoom.us/j/123"}
	req := models.BookingRequest{
		StudentName:   "Sam Lee",
		StudentEmail:  "sam@example.com",
		ParentName:    "Dana Lee",
		ParentEmail:   "dana@example.com",
		Grade:         "10",
		Course:        "AP Calculus",
		HelpText:      "Limits and derivatives",
		MaterialsLink: "https://drive.example.com/folder",
	}

	desc := eventDescription(tutor, req, "booking-123")

	assert.Contains(t, desc, "Booking ID: booking-123")
	assert.Contains(t, desc, "Student: Sam Lee")
	assert.Contains(t, desc, "Parent Email: dana@example.com")
	assert.Contains(t, desc, "AP Calculus")
	assert.Contains(t, desc, "Limits and derivatives")
	assert.Contains(t, desc, "https://drive.example.com/folder")
	assert.Contains(t, desc, "https://zoom.us/j/123")

	noZoom := eventDescription(&models.Tutor{}, req, "booking-123")
	assert.Contains(t, noZoom, "Zoom link will be emailed.")
}
