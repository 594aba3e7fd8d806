package calendar

import (
	"time"

	"tutorbase/models"

	gcal "google.golang.org/api/calendar/v3"
)

// parseEventTime resolves a calendar event boundary: timed events carry
// DateTime, all-day events carry Date (a bare calendar date resolved in
// loc at midnight).
func parseEventTime(edt *gcal.EventDateTime, loc *time.Location) (time.Time, bool) {
	if edt == nil {
		return time.Time{}, false
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	if edt.Date != "" {
		t, err := time.ParseInLocation("2006-01-02", edt.Date, loc)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
	return time.Time{}, false
}

// eventInterval extracts the half-open span of an event. Events with a
// missing or unparsable boundary, or with start >= end, report ok=false
// and are dropped upstream — a malformed calendar record is treated as
// absent, not as an error.
func eventInterval(ev *gcal.Event, loc *time.Location) (models.Interval, bool) {
	if ev == nil {
		return models.Interval{}, false
	}
	start, ok := parseEventTime(ev.Start, loc)
	if !ok {
		return models.Interval{}, false
	}
	end, ok := parseEventTime(ev.End, loc)
	if !ok {
		return models.Interval{}, false
	}
	iv, err := models.NewInterval(start, end)
	if err != nil {
		return models.Interval{}, false
	}
	return iv, true
}

// AvailabilityWindows converts raw availability events into windows,
// keeping each event's summary as the window title for pricing.
func AvailabilityWindows(events []*gcal.Event, loc *time.Location) []models.AvailabilityWindow {
	windows := make([]models.AvailabilityWindow, 0, len(events))
	for _, ev := range events {
		iv, ok := eventInterval(ev, loc)
		if !ok {
			continue
		}
		windows = append(windows, models.AvailabilityWindow{Interval: iv, Title: ev.Summary})
	}
	return windows
}

// BookedBlocks converts raw bookings-calendar events into blocks.
func BookedBlocks(events []*gcal.Event, loc *time.Location) []models.BookedBlock {
	blocks := make([]models.BookedBlock, 0, len(events))
	for _, ev := range events {
		iv, ok := eventInterval(ev, loc)
		if !ok {
			continue
		}
		blocks = append(blocks, models.BookedBlock{Interval: iv})
	}
	return blocks
}
