package scheduling

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"tutorbase/models"
)

func TestValidateCommit(t *testing.T) {
	windows := []models.AvailabilityWindow{
		window(9, 0, 12, 0),
		window(14, 0, 16, 0),
	}
	blocks := []models.BookedBlock{{Interval: span(10, 0, 11, 0)}}

	t.Run("clean slot passes", func(t *testing.T) {
		assert.NoError(t, ValidateCommit(span(11, 0, 12, 0), windows, blocks))
	})

	t.Run("slot outside every window", func(t *testing.T) {
		err := ValidateCommit(span(12, 30, 13, 30), windows, blocks)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("slot straddling a window edge", func(t *testing.T) {
		err := ValidateCommit(span(11, 30, 12, 30), windows, blocks)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("slot colliding with a booked block", func(t *testing.T) {
		err := ValidateCommit(span(9, 30, 10, 30), windows, blocks)
		assert.ErrorIs(t, err, ErrSlotAlreadyBooked)

		var commitErr *CommitError
		assert.True(t, errors.As(err, &commitErr))
		assert.Equal(t, "slot_already_booked", commitErr.Code)
	})

	t.Run("containment is checked before booking conflicts", func(t *testing.T) {
		// Outside every window and overlapping a block: unavailability wins.
		err := ValidateCommit(span(8, 0, 10, 30), windows, blocks)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})

	t.Run("no windows at all", func(t *testing.T) {
		err := ValidateCommit(span(9, 0, 10, 0), nil, nil)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	})
}
