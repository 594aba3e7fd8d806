package models

// Tutor is the full tutor profile, including calendar wiring. Stored in
// the tutors collection; only TutorPublic ever leaves the API.
type Tutor struct {
	ID                      string   `bson:"id" json:"id"`
	DisplayName             string   `bson:"displayName" json:"displayName"`
	Subjects                []string `bson:"subjects" json:"subjects"`
	Blurb                   string   `bson:"blurb" json:"blurb"`
	BookingBlurb            string   `bson:"bookingBlurb,omitempty" json:"bookingBlurb,omitempty"`
	PhotoURL                string   `bson:"photoUrl,omitempty" json:"photoUrl,omitempty"`
	BaseRateCents           *int     `bson:"baseRateCents,omitempty" json:"baseRateCents,omitempty"`
	CalendarTitleForPricing string   `bson:"calendarTitleForPricing,omitempty" json:"calendarTitleForPricing,omitempty"`
	AvailabilityCalendarID  string   `bson:"availabilityCalendarId,omitempty" json:"availabilityCalendarId,omitempty"`
	BookingsCalendarID      string   `bson:"bookingsCalendarId,omitempty" json:"bookingsCalendarId,omitempty"`
	CalendarConnected       bool     `bson:"calendarConnected" json:"calendarConnected"`
	ZoomLink                string   `bson:"zoomLink,omitempty" json:"zoomLink,omitempty"`
	IsActive                bool     `bson:"isActive" json:"isActive"`
	SortOrder               int      `bson:"sortOrder" json:"sortOrder"`
}

// TutorPublic is the tutor view exposed to the booking UI. Rates are
// only ever surfaced through computed quotes, never as raw fields.
type TutorPublic struct {
	ID                string   `json:"id"`
	DisplayName       string   `json:"displayName"`
	Subjects          []string `json:"subjects"`
	Blurb             string   `json:"blurb"`
	BookingBlurb      string   `json:"bookingBlurb,omitempty"`
	PhotoURL          string   `json:"photoUrl,omitempty"`
	CalendarConnected bool     `json:"calendarConnected"`
}

// Public strips the calendar wiring, rate, and internal flags from a
// tutor.
func (t Tutor) Public() TutorPublic {
	return TutorPublic{
		ID:                t.ID,
		DisplayName:       t.DisplayName,
		Subjects:          t.Subjects,
		Blurb:             t.Blurb,
		BookingBlurb:      t.BookingBlurb,
		PhotoURL:          t.PhotoURL,
		CalendarConnected: t.CalendarConnected,
	}
}
