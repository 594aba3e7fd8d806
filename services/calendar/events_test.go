package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gcal "google.golang.org/api/calendar/v3"
)

func timedEvent(summary, start, end string) *gcal.Event {
	return &gcal.Event{
		Summary: summary,
		Start:   &gcal.EventDateTime{DateTime: start},
		End:     &gcal.EventDateTime{DateTime: end},
	}
}

func TestAvailabilityWindowsParsesTimedEvents(t *testing.T) {
	events := []*gcal.Event{
		timedEvent("Available (3)", "2026-03-10T09:00:00Z", "2026-03-10T12:00:00Z"),
	}

	windows := AvailabilityWindows(events, time.UTC)
	require.Len(t, windows, 1)
	assert.Equal(t, "Available (3)", windows[0].Title)
	assert.Equal(t, time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC), windows[0].Start)
	assert.Equal(t, time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC), windows[0].End)
}

func TestAvailabilityWindowsParsesAllDayEvents(t *testing.T) {
	loc, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	events := []*gcal.Event{
		{
			Summary: "Available",
			Start:   &gcal.EventDateTime{Date: "2026-03-10"},
			End:     &gcal.EventDateTime{Date: "2026-03-11"},
		},
	}

	windows := AvailabilityWindows(events, loc)
	require.Len(t, windows, 1)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, loc), windows[0].Start)
	assert.Equal(t, time.Date(2026, time.March, 11, 0, 0, 0, 0, loc), windows[0].End)
}

func TestMalformedEventsAreDroppedSilently(t *testing.T) {
	events := []*gcal.Event{
		nil,
		{Summary: "no boundaries at all"},
		{Summary: "missing end", Start: &gcal.EventDateTime{DateTime: "2026-03-10T09:00:00Z"}},
		{Summary: "empty boundaries", Start: &gcal.EventDateTime{}, End: &gcal.EventDateTime{}},
		timedEvent("garbage timestamps", "yesterday-ish", "2026-03-10T12:00:00Z"),
		timedEvent("inverted span", "2026-03-10T12:00:00Z", "2026-03-10T09:00:00Z"),
		timedEvent("zero-length span", "2026-03-10T09:00:00Z", "2026-03-10T09:00:00Z"),
		timedEvent("the only good one", "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z"),
	}

	windows := AvailabilityWindows(events, time.UTC)
	require.Len(t, windows, 1)
	assert.Equal(t, "the only good one", windows[0].Title)

	blocks := BookedBlocks(events, time.UTC)
	assert.Len(t, blocks, 1)
}

func TestBookedBlocksCarryNoTitle(t *testing.T) {
	events := []*gcal.Event{
		timedEvent("Math session with Sam", "2026-03-10T09:00:00Z", "2026-03-10T10:00:00Z"),
	}

	blocks := BookedBlocks(events, time.UTC)
	require.Len(t, blocks, 1)
	assert.Equal(t, time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC), blocks[0].Start)
}
