package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Session lengths in minutes. Only hour-long tutoring sessions are
// priced; 15-minute consultations are free.
const (
	SessionLengthFull         = 60
	SessionLengthConsultation = 15
)

// BookingRequest is the payload for committing a booking against a
// previously offered slot.
type BookingRequest struct {
	TutorID       string `json:"tutorId" binding:"required"`
	SessionLength int    `json:"sessionLength" binding:"required"`
	StartTimeISO  string `json:"startTimeISO" binding:"required"`
	ParentName    string `json:"parentName" binding:"required"`
	ParentEmail   string `json:"parentEmail" binding:"required,email"`
	StudentName   string `json:"studentName" binding:"required"`
	StudentEmail  string `json:"studentEmail" binding:"required,email"`
	Grade         string `json:"grade" binding:"required"`
	Course        string `json:"course" binding:"required"`
	HelpText      string `json:"helpText" binding:"required"`
	MaterialsLink string `json:"materialsLink,omitempty"`
	FileNames     string `json:"fileNames,omitempty"`
}

// BookingConfirmation is returned once a commit succeeds (or is parked
// for manual confirmation when the tutor's calendar is not connected).
type BookingConfirmation struct {
	BookingID            string `json:"bookingId"`
	CalendarNotConnected bool   `json:"calendarNotConnected,omitempty"`
	Message              string `json:"message,omitempty"`
}

// BookingRecord is the persisted, append-only trace of a booking. The
// record store is write-once: records are created at commit or webhook
// time and never consulted by the scheduling core.
type BookingRecord struct {
	ID              string    `bson:"id" json:"id"`
	StripeSessionID string    `bson:"stripeSessionId,omitempty" json:"stripeSessionId,omitempty"`
	TutorID         string    `bson:"tutorId" json:"tutorId"`
	TutorName       string    `bson:"tutorName" json:"tutorName"`
	SessionLength   int       `bson:"sessionLength" json:"sessionLength"`
	StartTime       time.Time `bson:"startTime" json:"startTime"`
	EndTime         time.Time `bson:"endTime" json:"endTime"`
	ParentName      string    `bson:"parentName" json:"parentName"`
	ParentEmail     string    `bson:"parentEmail" json:"parentEmail"`
	StudentName     string    `bson:"studentName" json:"studentName"`
	StudentEmail    string    `bson:"studentEmail" json:"studentEmail"`
	Grade           string    `bson:"grade,omitempty" json:"grade,omitempty"`
	Course          string    `bson:"course,omitempty" json:"course,omitempty"`
	HelpText        string    `bson:"helpText,omitempty" json:"helpText,omitempty"`
	PriceCents      int       `bson:"priceCents,omitempty" json:"priceCents,omitempty"`
	Status          string    `bson:"status" json:"status"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	CalendarEventID string    `bson:"calendarEventId,omitempty" json:"calendarEventId,omitempty"`
}

// ConfirmationEmailPayload is the task payload for the async
// confirmation mailer.
type ConfirmationEmailPayload struct {
	BookingID    string    `json:"bookingId"`
	TutorName    string    `json:"tutorName"`
	ParentName   string    `json:"parentName"`
	ParentEmail  string    `json:"parentEmail"`
	StudentName  string    `json:"studentName"`
	StudentEmail string    `json:"studentEmail"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	ZoomLink     string    `json:"zoomLink,omitempty"`
}
