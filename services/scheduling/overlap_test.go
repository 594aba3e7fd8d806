package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tutorbase/models"
)

func at(hour, min int) time.Time {
	return time.Date(2026, time.March, 10, hour, min, 0, 0, time.UTC)
}

func span(startHour, startMin, endHour, endMin int) models.Interval {
	return models.Interval{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b models.Interval
		want bool
	}{
		{"disjoint before", span(9, 0, 10, 0), span(11, 0, 12, 0), false},
		{"touching boundaries do not overlap", span(9, 0, 10, 0), span(10, 0, 11, 0), false},
		{"partial overlap", span(9, 0, 10, 0), span(9, 30, 10, 30), true},
		{"a contains b", span(9, 0, 12, 0), span(10, 0, 11, 0), true},
		{"b contains a", span(10, 0, 11, 0), span(9, 0, 12, 0), true},
		{"identical", span(9, 0, 10, 0), span(9, 0, 10, 0), true},
		{"shared start", span(9, 0, 10, 0), span(9, 0, 9, 30), true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Overlaps(tc.a, tc.b))
			assert.Equal(t, tc.want, Overlaps(tc.b, tc.a), "overlap must be symmetric")
		})
	}
}

func TestHasOverlap(t *testing.T) {
	blocks := []models.BookedBlock{
		{Interval: span(9, 30, 10, 30)},
		{Interval: span(14, 0, 15, 0)},
	}

	assert.True(t, HasOverlap(span(10, 0, 11, 0), blocks))
	assert.True(t, HasOverlap(span(13, 30, 14, 30), blocks))
	assert.False(t, HasOverlap(span(11, 0, 12, 0), blocks))
	assert.False(t, HasOverlap(span(10, 30, 11, 30), blocks), "block end boundary is open")
	assert.False(t, HasOverlap(span(10, 0, 11, 0), nil))
}
