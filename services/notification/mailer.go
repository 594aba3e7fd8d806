package notification

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"tutorbase/models"

	"go.uber.org/zap"
)

// SMTPConfig carries the mail relay settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer sends booking confirmations over a plain SMTP relay.
type SMTPMailer struct {
	cfg    SMTPConfig
	auth   smtp.Auth
	logger *zap.Logger
}

// NewSMTPMailer builds a mailer from relay settings.
func NewSMTPMailer(cfg SMTPConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{
		cfg:    cfg,
		auth:   smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
		logger: logger,
	}
}

// SendBookingConfirmation mails the parent (and the student, when their
// address differs) the session details.
func (m *SMTPMailer) SendBookingConfirmation(ctx context.Context, p models.ConfirmationEmailPayload) error {
	recipients := []string{p.ParentEmail}
	if p.StudentEmail != "" && p.StudentEmail != p.ParentEmail {
		recipients = append(recipients, p.StudentEmail)
	}

	subject := fmt.Sprintf("Session confirmed with %s", p.TutorName)
	body := confirmationBody(p)

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(recipients, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	if err := smtp.SendMail(addr, m.auth, m.cfg.From, recipients, []byte(msg.String())); err != nil {
		return fmt.Errorf("sending confirmation mail for booking %s: %w", p.BookingID, err)
	}

	m.logger.Info("confirmation mail sent",
		zap.String("bookingID", p.BookingID),
		zap.Strings("to", recipients))
	return nil
}

func confirmationBody(p models.ConfirmationEmailPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", p.ParentName)
	fmt.Fprintf(&b, "Your tutoring session with %s is confirmed.\n\n", p.TutorName)
	fmt.Fprintf(&b, "Student: %s\n", p.StudentName)
	fmt.Fprintf(&b, "When: %s – %s\n", p.StartTime.Format("Mon, Jan 2 3:04 PM MST"), p.EndTime.Format("3:04 PM MST"))
	if p.ZoomLink != "" {
		fmt.Fprintf(&b, "Zoom: %s\n", p.ZoomLink)
	} else {
		b.WriteString("Your Zoom link will follow in a separate email.\n")
	}
	fmt.Fprintf(&b, "\nBooking reference: %s\n", p.BookingID)
	return b.String()
}
