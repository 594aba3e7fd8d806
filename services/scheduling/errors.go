package scheduling

import "fmt"

// CommitError is a user-facing rejection produced by commit-time
// re-validation. It is an expected outcome of the offer/commit gap,
// not a server fault: handlers surface it as a 409.
type CommitError struct {
	Code    string
	Message string
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

var (
	// ErrSlotUnavailable means the requested span no longer fits inside
	// any availability window.
	ErrSlotUnavailable = &CommitError{
		Code:    "slot_unavailable",
		Message: "selected time slot is not available",
	}

	// ErrSlotAlreadyBooked means the requested span overlaps an existing
	// booked block.
	ErrSlotAlreadyBooked = &CommitError{
		Code:    "slot_already_booked",
		Message: "selected time slot is already booked",
	}
)
