package pricing

import (
	"math"
	"time"

	"tutorbase/models"
)

// Pricing constants, all in cents. The base rate applies when a tutor
// has no rate of their own; the lead add-ons compensate short-notice
// sessions and taper off at three or more days out.
const (
	DefaultBaseRateCents = 5000 // $50/hour

	leadAddOnSameDayCents = 1500
	leadAddOnOneDayCents  = 1000
	leadAddOnTwoDaysCents = 500

	wtpPointCents = 500 // price swing per rating point away from neutral
)

// DaysInAdvance buckets how many local calendar days ahead the session
// starts: 0 (today or past), 1, 2, or 3 meaning three-plus. This is a
// wall-clock date comparison, not elapsed hours — a session two minutes
// past midnight is a full bucket ahead of one at 23:59 tonight. The
// two-hour minimum-lead eligibility filter is a separate, elapsed-time
// notion and lives with the availability query, not here.
func DaysInAdvance(start, now time.Time) int {
	local := start.In(now.Location())
	startDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, now.Location())
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	days := int(math.Floor(startDay.Sub(nowDay).Hours() / 24))
	if days <= 0 {
		return 0
	}
	if days >= 3 {
		return 3
	}
	return days
}

// HourlyPriceCents computes the dynamic hourly price for a 60-minute
// session: base rate, plus a lead-time add-on by days-in-advance
// bucket, plus a willingness adjustment of ±$5 per rating point from
// neutral (surcharge below 5, discount above). The total is clamped at
// zero. Pure: identical input, including Now, yields an identical
// quote.
func HourlyPriceCents(in models.PricingInput) models.PricingQuote {
	baseCents := DefaultBaseRateCents
	if in.BaseRateCents != nil {
		baseCents = *in.BaseRateCents
	}

	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}
	daysInAdvance := DaysInAdvance(in.Start, now)

	leadAddOnCents := 0
	switch daysInAdvance {
	case 0:
		leadAddOnCents = leadAddOnSameDayCents
	case 1:
		leadAddOnCents = leadAddOnOneDayCents
	case 2:
		leadAddOnCents = leadAddOnTwoDaysCents
	}

	wtp := ParseWtpFromTitle(in.CalendarTitle)
	wtpAddOnCents := 0
	if wtp < NeutralWtp {
		wtpAddOnCents = (NeutralWtp - wtp) * wtpPointCents
	} else if wtp > NeutralWtp {
		wtpAddOnCents = -(wtp - NeutralWtp) * wtpPointCents
	}

	hourlyCents := baseCents + leadAddOnCents + wtpAddOnCents
	if hourlyCents < 0 {
		hourlyCents = 0
	}

	return models.PricingQuote{
		HourlyCents: hourlyCents,
		Breakdown: models.PricingBreakdown{
			HourlyCents:    hourlyCents,
			BaseCents:      baseCents,
			DaysInAdvance:  daysInAdvance,
			LeadAddOnCents: leadAddOnCents,
			Wtp:            wtp,
			WtpAddOnCents:  wtpAddOnCents,
		},
	}
}

// SessionPriceCents prices a whole session. Only 60-minute sessions go
// through the hourly engine; 15-minute consultations are always free.
func SessionPriceCents(sessionMinutes int, in models.PricingInput) int {
	if sessionMinutes != models.SessionLengthFull {
		return 0
	}
	return HourlyPriceCents(in).HourlyCents
}
