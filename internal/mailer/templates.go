package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/debaren/debaren-backend/internal/models"
)

type bookingData struct {
	Name         string
	Venue        *models.Venue
	Booking      *models.Booking
	ChangePwURL  string
	SupportEmail string
}

type accountBookingData struct {
	bookingData
	Email    string
	Password string
}

var accountBookingTmpl = template.Must(template.New("account_booking").Parse(`
<h2>Welcome to Debaren, {{.Name}}!</h2>
<p>Your booking request for <strong>{{.Venue.Name}}</strong> on {{.Booking.StartDate}} has been received and is pending review.</p>
<p>We created an account for you so you can track your bookings:</p>
<ul>
  <li>Username: {{.Email}}</li>
  <li>Temporary password: {{.Password}}</li>
</ul>
<p>Please <a href="{{.ChangePwURL}}">change your password</a> after your first sign-in.</p>
<p>— The Debaren Team</p>
`))

var bookingConfirmationTmpl = template.Must(template.New("booking_confirmation").Parse(`
<h2>Hi {{.Name}},</h2>
<p>Thanks for booking with Debaren again. Your request for <strong>{{.Venue.Name}}</strong> on {{.Booking.StartDate}} has been received and is pending review.</p>
<p>You can manage your password any time <a href="{{.ChangePwURL}}">here</a>.</p>
<p>— The Debaren Team</p>
`))

var contactAutoReplyTmpl = template.Must(template.New("contact_autoreply").Parse(`
<h2>Hi {{.Name}},</h2>
<p>Thank you for contacting Debaren. Our team has received your message and will get back to you shortly.</p>
<p>If your enquiry is urgent, reach us at {{.SupportEmail}}.</p>
<p>— The Debaren Team</p>
`))

func renderAccountBooking(data accountBookingData) (plain, html string, err error) {
	var buf bytes.Buffer
	if err := accountBookingTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	plain = fmt.Sprintf(
		"Welcome to Debaren, %s!\n\nYour booking for %s on %s is pending review.\n\nUsername: %s\nTemporary password: %s\n\nChange your password: %s\n",
		data.Name, data.Venue.Name, data.Booking.StartDate, data.Email, data.Password, data.ChangePwURL,
	)
	return plain, buf.String(), nil
}

func renderBookingConfirmation(data bookingData) (plain, html string, err error) {
	var buf bytes.Buffer
	if err := bookingConfirmationTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	plain = fmt.Sprintf(
		"Hi %s,\n\nYour booking for %s on %s has been received and is pending review.\n\nManage your password: %s\n",
		data.Name, data.Venue.Name, data.Booking.StartDate, data.ChangePwURL,
	)
	return plain, buf.String(), nil
}

func renderContactNotification(cm *models.ContactMessage) string {
	return fmt.Sprintf(
		"You have received a new contact form submission:\n\nName: %s\nEmail: %s\nMessage:\n%s\n",
		cm.Name, cm.Email, cm.Message,
	)
}

func renderContactAutoReply(cm *models.ContactMessage, supportEmail string) (plain, html string, err error) {
	var buf bytes.Buffer
	data := struct {
		Name         string
		SupportEmail string
	}{Name: cm.Name, SupportEmail: supportEmail}
	if err := contactAutoReplyTmpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	plain = fmt.Sprintf("Hi %s,\n\nThank you for contacting Debaren. We'll reply soon.\n", cm.Name)
	return plain, buf.String(), nil
}
