package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tutorbase/models"
)

var testNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func quoteAt(daysAhead int, title string) models.PricingQuote {
	return HourlyPriceCents(models.PricingInput{
		Start:         testNow.AddDate(0, 0, daysAhead),
		CalendarTitle: title,
		Now:           testNow,
	})
}

func TestDaysInAdvance(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  int
	}{
		{"same day", testNow.Add(4 * time.Hour), 0},
		{"past date", testNow.AddDate(0, 0, -2), 0},
		{"tomorrow", testNow.AddDate(0, 0, 1), 1},
		{"two days out", testNow.AddDate(0, 0, 2), 2},
		{"three days out", testNow.AddDate(0, 0, 3), 3},
		{"ten days out clamps to three", testNow.AddDate(0, 0, 10), 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysInAdvance(tc.start, testNow))
		})
	}
}

func TestDaysInAdvanceComparesCalendarDatesNotElapsedHours(t *testing.T) {
	// 23:59 tonight and 00:01 tomorrow are two minutes apart but land
	// in different buckets.
	lateTonight := time.Date(2026, time.March, 10, 23, 59, 0, 0, time.UTC)
	earlyTomorrow := time.Date(2026, time.March, 11, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysInAdvance(lateTonight, testNow))
	assert.Equal(t, 1, DaysInAdvance(earlyTomorrow, testNow))
}

func TestHourlyPriceFourDaysOutNeutralTitle(t *testing.T) {
	q := quoteAt(4, "Available")

	assert.Equal(t, 5000, q.HourlyCents)
	assert.Equal(t, 3, q.Breakdown.DaysInAdvance)
	assert.Equal(t, 0, q.Breakdown.LeadAddOnCents)
	assert.Equal(t, 0, q.Breakdown.WtpAddOnCents)
}

func TestHourlyPriceLeadTimeAddOns(t *testing.T) {
	assert.Equal(t, 6500, quoteAt(0, "Available").HourlyCents, "same day adds $15")
	assert.Equal(t, 6000, quoteAt(1, "Available").HourlyCents, "one day out adds $10")

	twoDays := quoteAt(2, "Available")
	assert.Equal(t, 500, twoDays.Breakdown.LeadAddOnCents)
	assert.Equal(t, 5500, twoDays.HourlyCents)
}

func TestHourlyPriceLowWillingnessSurcharge(t *testing.T) {
	q := quoteAt(4, "Available (3)")

	assert.Equal(t, 3, q.Breakdown.Wtp)
	assert.Equal(t, 1000, q.Breakdown.WtpAddOnCents)
	assert.Equal(t, 6000, q.HourlyCents)
}

func TestHourlyPriceHighWillingnessDiscount(t *testing.T) {
	q := quoteAt(4, "Willingness 10/10")

	assert.Equal(t, 10, q.Breakdown.Wtp)
	assert.Equal(t, -2500, q.Breakdown.WtpAddOnCents)
	assert.Equal(t, 2500, q.HourlyCents)
}

func TestHourlyPriceDefaultsToNeutralRating(t *testing.T) {
	q := quoteAt(4, "")
	assert.Equal(t, NeutralWtp, q.Breakdown.Wtp)
	assert.Equal(t, 0, q.Breakdown.WtpAddOnCents)
}

func TestHourlyPriceBaseRateOverride(t *testing.T) {
	base := 8000
	q := HourlyPriceCents(models.PricingInput{
		Start:         testNow.AddDate(0, 0, 4),
		CalendarTitle: "Available",
		BaseRateCents: &base,
		Now:           testNow,
	})
	assert.Equal(t, 8000, q.HourlyCents)
	assert.Equal(t, 8000, q.Breakdown.BaseCents)
}

func TestHourlyPriceExplicitZeroBaseRateIsKept(t *testing.T) {
	// A nil base rate falls back to the default; an explicit zero does not.
	zero := 0
	q := HourlyPriceCents(models.PricingInput{
		Start:         testNow.AddDate(0, 0, 4),
		BaseRateCents: &zero,
		Now:           testNow,
	})
	assert.Equal(t, 0, q.Breakdown.BaseCents)
}

func TestHourlyPriceClampsAtZero(t *testing.T) {
	base := 1000
	q := HourlyPriceCents(models.PricingInput{
		Start:         testNow.AddDate(0, 0, 4),
		CalendarTitle: "Willingness 10/10", // -2500 against a $10 base
		BaseRateCents: &base,
		Now:           testNow,
	})
	assert.Equal(t, 0, q.HourlyCents)
	assert.Equal(t, -2500, q.Breakdown.WtpAddOnCents)
}

func TestHourlyPriceIsPure(t *testing.T) {
	in := models.PricingInput{
		Start:         testNow.AddDate(0, 0, 2),
		CalendarTitle: "Lauren Chen (7)",
		Now:           testNow,
	}
	first := HourlyPriceCents(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, HourlyPriceCents(in))
	}
}

func TestSessionPriceCents(t *testing.T) {
	in := models.PricingInput{
		Start:         testNow.AddDate(0, 0, 4),
		CalendarTitle: "Available",
		Now:           testNow,
	}

	assert.Equal(t, 5000, SessionPriceCents(models.SessionLengthFull, in))
	assert.Equal(t, 0, SessionPriceCents(models.SessionLengthConsultation, in), "consultations are free")
	assert.Equal(t, 0, SessionPriceCents(45, in))
}
