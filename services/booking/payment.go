package booking

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"tutorbase/config"
	"tutorbase/models"
	"tutorbase/services/pricing"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
	"go.uber.org/zap"
)

// CheckoutInput is the payload for creating a Stripe checkout session.
// The client never supplies the amount; the price is recomputed here
// from the calendar state at checkout time.
type CheckoutInput struct {
	TutorID            string `json:"tutorId" binding:"required"`
	StartTimeISO       string `json:"startDateTimeISO" binding:"required"`
	Currency           string `json:"currency,omitempty"`
	Description        string `json:"description,omitempty"`
	ParentName         string `json:"parentName,omitempty"`
	ParentEmail        string `json:"parentEmail,omitempty"`
	StudentName        string `json:"studentName,omitempty"`
	StudentEmail       string `json:"studentEmail,omitempty"`
	CalendarEventTitle string `json:"calendarEventTitle,omitempty"`
}

// CreateCheckoutSession builds a Stripe checkout session for a
// 60-minute session at a server-side recomputed price. The quote
// breakdown rides along in the session metadata so the webhook can
// finalize the booking record without re-deriving it.
func (s *DefaultBookingService) CreateCheckoutSession(ctx context.Context, in CheckoutInput) (string, error) {
	tutor, err := s.activeTutor(ctx, in.TutorID)
	if err != nil {
		return "", err
	}

	start, err := time.Parse(time.RFC3339, in.StartTimeISO)
	if err != nil {
		return "", fmt.Errorf("invalid startDateTimeISO: %w", err)
	}

	// Resolve the pricing label: explicit client hint, then the tutor's
	// placeholder title, then the availability window around the start.
	title := in.CalendarEventTitle
	if title == "" {
		title = tutor.CalendarTitleForPricing
	}
	var quote *models.PricingQuote
	if title != "" {
		q := quoteForTitle(start, title, tutorBaseRate(tutor))
		quote = &q
	} else {
		quote, err = s.Quote(ctx, tutor.ID, start)
		if err != nil {
			return "", err
		}
	}

	currency := in.Currency
	if currency == "" {
		currency = "usd"
	}
	description := in.Description
	if description == "" {
		description = "Tutoring Session (60 minutes)"
	}

	baseURL := config.AppConfig.BaseURL
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(description),
					},
					UnitAmount: stripe.Int64(int64(quote.HourlyCents)),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(baseURL + "/payment/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(baseURL + "/payment/cancel"),
	}
	if in.ParentEmail != "" {
		params.CustomerEmail = stripe.String(in.ParentEmail)
	}

	b := quote.Breakdown
	params.AddMetadata("tutorId", tutor.ID)
	params.AddMetadata("startDateTimeISO", in.StartTimeISO)
	params.AddMetadata("durationMinutes", strconv.Itoa(models.SessionLengthFull))
	params.AddMetadata("parentName", in.ParentName)
	params.AddMetadata("parentEmail", in.ParentEmail)
	params.AddMetadata("studentName", in.StudentName)
	params.AddMetadata("studentEmail", in.StudentEmail)
	params.AddMetadata("baseCents", strconv.Itoa(b.BaseCents))
	params.AddMetadata("hourlyCents", strconv.Itoa(b.HourlyCents))
	params.AddMetadata("daysInAdvance", strconv.Itoa(b.DaysInAdvance))
	params.AddMetadata("leadAddOnCents", strconv.Itoa(b.LeadAddOnCents))
	params.AddMetadata("wtp", strconv.Itoa(b.Wtp))
	params.AddMetadata("wtpAddOnCents", strconv.Itoa(b.WtpAddOnCents))

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("creating checkout session: %w", err)
	}

	s.Logger.Info("checkout session created",
		zap.String("tutorID", tutor.ID),
		zap.String("sessionID", sess.ID),
		zap.Int("amountCents", quote.HourlyCents))

	return sess.URL, nil
}

// FinalizeCheckout records a completed Stripe checkout as a completed
// booking. Called from the webhook after signature verification.
func (s *DefaultBookingService) FinalizeCheckout(ctx context.Context, sess *stripe.CheckoutSession) error {
	md := sess.Metadata
	tutorID := md["tutorId"]
	startISO := md["startDateTimeISO"]
	if tutorID == "" || startISO == "" {
		return fmt.Errorf("checkout session %s missing booking metadata", sess.ID)
	}

	tutor, err := s.TutorRepo.GetByID(ctx, tutorID)
	if err != nil {
		return fmt.Errorf("resolving tutor %s: %w", tutorID, err)
	}

	start, err := time.Parse(time.RFC3339, startISO)
	if err != nil {
		return fmt.Errorf("invalid start in checkout metadata: %w", err)
	}
	duration := models.SessionLengthFull
	if v, err := strconv.Atoi(md["durationMinutes"]); err == nil && v > 0 {
		duration = v
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	req := models.BookingRequest{
		TutorID:       tutor.ID,
		SessionLength: duration,
		StartTimeISO:  startISO,
		ParentName:    md["parentName"],
		ParentEmail:   md["parentEmail"],
		StudentName:   md["studentName"],
		StudentEmail:  md["studentEmail"],
	}
	if req.ParentEmail == "" {
		req.ParentEmail = sess.CustomerEmail
	}

	// Write the booking into the tutor's calendars so the sold slot
	// becomes a booked block for every later availability query and
	// commit re-validation. The payment already went through, so a
	// calendar failure is logged and the record still lands.
	var eventID string
	if tutor.CalendarConnected && tutor.BookingsCalendarID != "" {
		eventID, err = s.createBookingEvents(ctx, tutor, req, sess.ID, start, end)
		if err != nil {
			s.Logger.Error("failed to create calendar event for paid booking",
				zap.String("sessionID", sess.ID),
				zap.String("tutorID", tutor.ID),
				zap.Error(err))
			eventID = ""
		}
	} else {
		s.Logger.Warn("calendar not connected, paid booking requires manual scheduling",
			zap.String("sessionID", sess.ID), zap.String("tutorID", tutor.ID))
	}

	record := models.BookingRecord{
		StripeSessionID: sess.ID,
		TutorID:         tutor.ID,
		TutorName:       tutor.DisplayName,
		SessionLength:   duration,
		StartTime:       start,
		EndTime:         end,
		ParentName:      req.ParentName,
		ParentEmail:     req.ParentEmail,
		StudentName:     req.StudentName,
		StudentEmail:    req.StudentEmail,
		PriceCents:      int(sess.AmountTotal),
		Status:          models.BookingStatusCompleted,
		CreatedAt:       time.Now(),
		CalendarEventID: eventID,
	}

	bookingID, err := s.RecordsRepo.Create(ctx, record)
	if err != nil {
		return fmt.Errorf("persisting completed booking: %w", err)
	}

	if s.Mail != nil {
		payload := models.ConfirmationEmailPayload{
			BookingID:    bookingID,
			TutorName:    tutor.DisplayName,
			ParentName:   record.ParentName,
			ParentEmail:  record.ParentEmail,
			StudentName:  record.StudentName,
			StudentEmail: record.StudentEmail,
			StartTime:    start,
			EndTime:      end,
			ZoomLink:     tutor.ZoomLink,
		}
		if err := s.Mail.EnqueueConfirmation(ctx, payload); err != nil {
			s.Logger.Warn("failed to enqueue payment confirmation email",
				zap.String("sessionID", sess.ID), zap.Error(err))
		}
	}

	s.Logger.Info("checkout finalized",
		zap.String("sessionID", sess.ID),
		zap.String("tutorID", tutor.ID),
		zap.Int64("amountCents", sess.AmountTotal))
	return nil
}

// quoteForTitle prices directly from a known label, skipping the
// calendar lookup.
func quoteForTitle(start time.Time, title string, baseRateCents *int) models.PricingQuote {
	return pricing.HourlyPriceCents(models.PricingInput{
		Start:         start,
		CalendarTitle: title,
		BaseRateCents: baseRateCents,
	})
}
