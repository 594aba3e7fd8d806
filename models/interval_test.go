package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func TestNewIntervalRejectsNonPositiveSpan(t *testing.T) {
	_, err := NewInterval(at(10, 0), at(9, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	_, err = NewInterval(at(10, 0), at(10, 0))
	assert.ErrorIs(t, err, ErrInvalidInterval)

	iv, err := NewInterval(at(9, 0), at(10, 0))
	require.NoError(t, err)
	assert.True(t, iv.IsValid())
}

func TestIntervalContainsIsHalfOpen(t *testing.T) {
	iv, err := NewInterval(at(9, 0), at(10, 0))
	require.NoError(t, err)

	assert.True(t, iv.Contains(at(9, 0)), "start is inclusive")
	assert.True(t, iv.Contains(at(9, 59)))
	assert.False(t, iv.Contains(at(10, 0)), "end is exclusive")
	assert.False(t, iv.Contains(at(8, 59)))
}

func TestIntervalCovers(t *testing.T) {
	outer, err := NewInterval(at(9, 0), at(12, 0))
	require.NoError(t, err)

	tests := []struct {
		name  string
		inner Interval
		want  bool
	}{
		{"strictly inside", Interval{Start: at(10, 0), End: at(11, 0)}, true},
		{"identical span", Interval{Start: at(9, 0), End: at(12, 0)}, true},
		{"shared start boundary", Interval{Start: at(9, 0), End: at(10, 0)}, true},
		{"shared end boundary", Interval{Start: at(11, 0), End: at(12, 0)}, true},
		{"starts before", Interval{Start: at(8, 30), End: at(10, 0)}, false},
		{"ends after", Interval{Start: at(11, 30), End: at(12, 30)}, false},
		{"disjoint", Interval{Start: at(13, 0), End: at(14, 0)}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, outer.Covers(tc.inner))
		})
	}
}
