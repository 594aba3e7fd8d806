package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseWtpFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  int
	}{
		// No signal defaults to neutral.
		{"", 5},
		{"Available", 5},
		{"Office hours with Lauren", 5},

		// Standalone numbers.
		{"Available 7", 7},
		{"Session 3", 3},
		{"10", 10},
		{"1", 1},

		// Parenthesized ratings.
		{"Lauren Chen (7)", 7},
		{"Available (3)", 3},

		// N/10 forms.
		{"Willingness 7/10", 7},
		{"Rating: 3/10", 3},

		// Labeled forms.
		{"rating 5", 5},
		{"Willingness: 8", 8},
		{"willing 2", 2},
		{"wtp-4", 4},

		// A standalone token wins over a later labeled pattern.
		{"7 rating 5", 7},

		// Out-of-range numbers are no match, never clamped.
		{"0", 5},
		{"11", 5},
		{"Available (12)", 5},
	}
	for _, tc := range tests {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseWtpFromTitle(tc.title))
		})
	}
}
