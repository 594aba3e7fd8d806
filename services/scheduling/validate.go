package scheduling

import "tutorbase/models"

// ValidateCommit re-checks a previously offered slot against a fresh
// snapshot of the tutor's calendars. Availability is never cached
// between the offer and the commit, so this re-check is the system's
// only guard against the double-booking race; callers must fetch
// windows and blocks immediately before calling it.
//
// Returns ErrSlotUnavailable when the candidate no longer fits inside
// any availability window, ErrSlotAlreadyBooked when it overlaps an
// existing booked block, and nil when the commit may proceed. No state
// is touched either way.
func ValidateCommit(candidate models.Interval, windows []models.AvailabilityWindow, blocks []models.BookedBlock) error {
	fits := false
	for _, w := range windows {
		if w.Covers(candidate) {
			fits = true
			break
		}
	}
	if !fits {
		return ErrSlotUnavailable
	}
	if HasOverlap(candidate, blocks) {
		return ErrSlotAlreadyBooked
	}
	return nil
}
