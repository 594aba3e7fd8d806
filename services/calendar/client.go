package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Config carries the OAuth credentials and operating timezone for the
// calendar source.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	RefreshToken string
	Timezone     string
}

// Client wraps the Google Calendar API for one service account. It is
// constructed once and passed in explicitly: the booking service owns
// the handle, nothing caches it at process scope.
type Client struct {
	svc      *gcal.Service
	timezone string
}

// NewClient builds a calendar client from a long-lived refresh token.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, fmt.Errorf("calendar: missing Google OAuth credentials")
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURI,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gcal.CalendarScope},
	}
	token := &oauth2.Token{RefreshToken: cfg.RefreshToken}

	svc, err := gcal.NewService(ctx, option.WithHTTPClient(oauthCfg.Client(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("calendar: building service: %w", err)
	}

	tz := cfg.Timezone
	if tz == "" {
		tz = "UTC"
	}
	return &Client{svc: svc, timezone: tz}, nil
}

// Events lists the expanded (non-recurring) events of a calendar inside
// [timeMin, timeMax), ordered by start time.
func (c *Client) Events(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*gcal.Event, error) {
	res, err := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		TimeZone(c.timezone).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: listing events for %s: %w", calendarID, err)
	}
	return res.Items, nil
}

// EventInput describes a booking event to create.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   []Attendee
	BookingID   string
	SendInvites bool
}

// Attendee is an invitee on a booking event.
type Attendee struct {
	Email       string
	DisplayName string
}

// CreateEvent inserts a booking event into the given calendar and
// returns its event ID. Invites go out only when SendInvites is set;
// the mirrored availability-calendar copy is created silently.
func (c *Client) CreateEvent(ctx context.Context, calendarID string, in EventInput) (string, error) {
	ev := &gcal.Event{
		Summary:     in.Summary,
		Description: in.Description,
		Start:       &gcal.EventDateTime{DateTime: in.Start.Format(time.RFC3339), TimeZone: c.timezone},
		End:         &gcal.EventDateTime{DateTime: in.End.Format(time.RFC3339), TimeZone: c.timezone},
	}
	for _, a := range in.Attendees {
		ev.Attendees = append(ev.Attendees, &gcal.EventAttendee{
			Email:       a.Email,
			DisplayName: a.DisplayName,
		})
	}
	if in.BookingID != "" {
		ev.ExtendedProperties = &gcal.EventExtendedProperties{
			Private: map[string]string{"bookingId": in.BookingID},
		}
	}

	sendUpdates := "none"
	if in.SendInvites {
		sendUpdates = "all"
	}

	created, err := c.svc.Events.Insert(calendarID, ev).
		SendUpdates(sendUpdates).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("calendar: inserting event into %s: %w", calendarID, err)
	}
	return created.Id, nil
}
