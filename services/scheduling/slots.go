package scheduling

import (
	"sort"
	"time"

	"tutorbase/models"
)

// GridStep is the fixed cursor step between candidate session starts.
// It is independent of session duration: 15- and 60-minute sessions
// both walk the same 30-minute grid.
const GridStep = 30 * time.Minute

// snapToGrid rounds t forward to the nearest :00 or :30 mark. Times
// already on the grid keep their minute, with seconds truncated.
func snapToGrid(t time.Time) time.Time {
	y, mo, d := t.Date()
	h, m := t.Hour(), t.Minute()
	switch {
	case m == 0 || m == 30:
		return time.Date(y, mo, d, h, m, 0, 0, t.Location())
	case m < 30:
		return time.Date(y, mo, d, h, 30, 0, 0, t.Location())
	default:
		return time.Date(y, mo, d, h, 0, 0, 0, t.Location()).Add(time.Hour)
	}
}

// GenerateSlots enumerates every legal session start inside the given
// availability windows, excluding starts whose session would overlap a
// booked block. Windows are processed independently (never merged), so
// two windows covering the same span yield duplicate starts; callers
// accept that as-is. The result is sorted ascending.
func GenerateSlots(windows []models.AvailabilityWindow, sessionMinutes int, blocks []models.BookedBlock) []time.Time {
	slots := make([]time.Time, 0, len(windows)*4)
	for _, w := range windows {
		slots = appendWindowSlots(slots, w.Interval, sessionMinutes, blocks)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Before(slots[j]) })
	return slots
}

// GenerateSlotsWithTitles is GenerateSlots, with each slot carrying the
// summary of the window it was cut from. The title feeds pricing only.
func GenerateSlotsWithTitles(windows []models.AvailabilityWindow, sessionMinutes int, blocks []models.BookedBlock) []models.Slot {
	slots := make([]models.Slot, 0, len(windows)*4)
	for _, w := range windows {
		for _, start := range appendWindowSlots(nil, w.Interval, sessionMinutes, blocks) {
			slots = append(slots, models.Slot{Start: start, Title: w.Title})
		}
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Start.Before(slots[j].Start) })
	return slots
}

// appendWindowSlots walks one window on the grid and appends every
// clean session start. A window shorter than the session duration
// yields nothing; a window whose end is off-grid simply stops once the
// session would poke past it.
func appendWindowSlots(out []time.Time, window models.Interval, sessionMinutes int, blocks []models.BookedBlock) []time.Time {
	duration := time.Duration(sessionMinutes) * time.Minute
	cursor := snapToGrid(window.Start)

	for !cursor.Add(duration).After(window.End) {
		// Guard for the first snapped position landing before the
		// window opens: skip, never clamp.
		if cursor.Before(window.Start) {
			cursor = cursor.Add(GridStep)
			continue
		}

		candidate := models.Interval{Start: cursor, End: cursor.Add(duration)}
		if !HasOverlap(candidate, blocks) {
			out = append(out, cursor)
		}
		cursor = cursor.Add(GridStep)
	}
	return out
}
