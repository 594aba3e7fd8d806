package models

import (
	"errors"
	"time"
)

// ErrInvalidInterval is returned when an interval is constructed with
// start >= end.
var ErrInvalidInterval = errors.New("invalid interval: start must be before end")

// Interval is a half-open time span [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewInterval builds a validated half-open interval.
func NewInterval(start, end time.Time) (Interval, error) {
	iv := Interval{Start: start, End: end}
	if !iv.IsValid() {
		return Interval{}, ErrInvalidInterval
	}
	return iv, nil
}

// IsValid reports whether the interval satisfies start < end.
func (iv Interval) IsValid() bool {
	return iv.Start.Before(iv.End)
}

// Contains reports whether t falls inside the half-open interval:
// inclusive of Start, exclusive of End.
func (iv Interval) Contains(t time.Time) bool {
	return !t.Before(iv.Start) && t.Before(iv.End)
}

// Covers reports whether the other interval lies entirely inside this
// one (shared boundaries allowed).
func (iv Interval) Covers(other Interval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}

// AvailabilityWindow is a span during which a tutor is willing to be
// booked. Title carries the calendar event summary; it feeds pricing
// only, never eligibility.
type AvailabilityWindow struct {
	Interval
	Title string `json:"title,omitempty"`
}

// BookedBlock is a span already committed to an existing booking.
type BookedBlock struct {
	Interval
}

// Slot is a candidate session start cut from an availability window.
// It is derived and ephemeral: never persisted, recomputed on every
// availability query.
type Slot struct {
	Start time.Time `json:"start"`
	Title string    `json:"title,omitempty"`
}
