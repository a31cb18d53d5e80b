package mailer

import (
	"context"
	"log"

	"github.com/debaren/debaren-backend/internal/models"
	"github.com/wneessen/go-mail"
)

// Mailer sends the transactional emails of the booking and contact
// flows. Implementations must treat each send as best-effort: callers
// log failures and move on, they never roll anything back.
type Mailer interface {
	// SendAccountBooking sends the "account + booking" welcome for a
	// freshly provisioned account, including the plaintext initial
	// password and a change-password link.
	SendAccountBooking(ctx context.Context, booking *models.Booking, venue *models.Venue, password string) error
	// SendBookingConfirmation sends the plain confirmation for a
	// returning customer.
	SendBookingConfirmation(ctx context.Context, booking *models.Booking, venue *models.Venue) error
	// SendContactNotification notifies the operator address about a new
	// contact-form submission.
	SendContactNotification(ctx context.Context, msg *models.ContactMessage) error
	// SendContactAutoReply sends the auto-reply to the submitter.
	SendContactAutoReply(ctx context.Context, msg *models.ContactMessage) error
}

// Config holds the SMTP relay settings and the addresses used when
// composing messages.
type Config struct {
	Host         string
	Port         int
	Username     string
	Password     string
	FromName     string
	FromAddress  string
	ContactEmail string // operator inbox for contact-form notifications
	FrontendURL  string // base URL for password-change links
}

type smtpMailer struct {
	cfg Config
}

// NewSMTP returns a Mailer backed by an SMTP relay.
func NewSMTP(cfg Config) Mailer {
	return &smtpMailer{cfg: cfg}
}

func (m *smtpMailer) client() (*mail.Client, error) {
	c, err := mail.NewClient(
		m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		log.Printf("[Mailer] could not initialize smtp client: %v", err)
		return nil, err
	}
	return c, nil
}

func (m *smtpMailer) send(ctx context.Context, to, subject, plain, html string) error {
	c, err := m.client()
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.FromAddress); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, plain)
	if html != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, html)
	}

	return c.DialAndSendWithContext(ctx, msg)
}

func (m *smtpMailer) changePasswordURL() string {
	return m.cfg.FrontendURL + "/account/reset-password/"
}

func (m *smtpMailer) SendAccountBooking(ctx context.Context, booking *models.Booking, venue *models.Venue, password string) error {
	data := accountBookingData{
		bookingData: bookingData{
			Name:         booking.CustomerName,
			Venue:        venue,
			Booking:      booking,
			ChangePwURL:  m.changePasswordURL(),
			SupportEmail: m.cfg.ContactEmail,
		},
		Email:    booking.CustomerEmail,
		Password: password,
	}
	plain, html, err := renderAccountBooking(data)
	if err != nil {
		return err
	}
	return m.send(ctx, booking.CustomerEmail, "Your Debaren Booking & Account", plain, html)
}

func (m *smtpMailer) SendBookingConfirmation(ctx context.Context, booking *models.Booking, venue *models.Venue) error {
	data := bookingData{
		Name:         booking.CustomerName,
		Venue:        venue,
		Booking:      booking,
		ChangePwURL:  m.changePasswordURL(),
		SupportEmail: m.cfg.ContactEmail,
	}
	plain, html, err := renderBookingConfirmation(data)
	if err != nil {
		return err
	}
	return m.send(ctx, booking.CustomerEmail, "Your Debaren Booking Confirmation", plain, html)
}

func (m *smtpMailer) SendContactNotification(ctx context.Context, cm *models.ContactMessage) error {
	plain := renderContactNotification(cm)
	subject := "[Debaren Contact] New Message from " + cm.Name
	return m.send(ctx, m.cfg.ContactEmail, subject, plain, "")
}

func (m *smtpMailer) SendContactAutoReply(ctx context.Context, cm *models.ContactMessage) error {
	plain, html, err := renderContactAutoReply(cm, m.cfg.ContactEmail)
	if err != nil {
		return err
	}
	return m.send(ctx, cm.Email, "Thank you for contacting Debaren!", plain, html)
}
