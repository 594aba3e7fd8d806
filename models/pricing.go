package models

import "time"

// PricingInput carries everything the pricing engine needs to quote a
// 60-minute session. BaseRateCents is optional; nil falls back to the
// configured default rate. Now is optional and exists so quotes are
// reproducible in tests; the zero value means "current time".
type PricingInput struct {
	Start         time.Time `json:"start"`
	CalendarTitle string    `json:"calendarTitle,omitempty"`
	BaseRateCents *int      `json:"baseRateCents,omitempty"`
	Now           time.Time `json:"-"`
}

// PricingBreakdown itemizes how an hourly price was derived. It is part
// of the quote contract: the booking UI renders it to the parent before
// payment, so every add-on must be attributable.
type PricingBreakdown struct {
	HourlyCents    int `json:"hourlyCents"`
	BaseCents      int `json:"baseCents"`
	DaysInAdvance  int `json:"daysInAdvance"` // 0, 1, 2, or 3 (3 means 3+)
	LeadAddOnCents int `json:"leadAddOnCents"`
	Wtp            int `json:"wtp"` // willingness-to-tutor rating used (1-10)
	WtpAddOnCents  int `json:"wtpAddOnCents"`
}

// PricingQuote is the engine's result: the scalar hourly price plus its
// breakdown.
type PricingQuote struct {
	HourlyCents int              `json:"hourlyCents"`
	Breakdown   PricingBreakdown `json:"breakdown"`
}
