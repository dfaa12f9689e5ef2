package mail

import (
	"fmt"

	"tendorai/internal/config"
	"tendorai/internal/domain/lead"

	"gopkg.in/gomail.v2"
)

// Sender delivers transactional email over SMTP. A nil *Sender is a
// valid no-op, so callers don't need to special-case disabled SMTP.
type Sender struct {
	host string
	port int
	user string
	pass string
	from string
}

// NewSender builds a Sender from config, or nil when SMTP is not
// configured
func NewSender(cfg *config.Config) *Sender {
	if !cfg.SMTPConfigured() {
		return nil
	}
	return &Sender{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPassword,
		from: cfg.SMTPFrom,
	}
}

func (s *Sender) send(to, subject, htmlBody string) error {
	if s == nil {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// SendNewLead tells a vendor a quote request arrived
func (s *Sender) SendNewLead(to, vendorName string, l *lead.Lead) error {
	subject := fmt.Sprintf("New quote request from %s", l.CompanyName)
	body := fmt.Sprintf(
		`<p>Hi %s,</p>
<p>You have a new quote request on TendorAI:</p>
<ul>
  <li><strong>Company:</strong> %s</li>
  <li><strong>Category:</strong> %s</li>
  <li><strong>Postcode:</strong> %s</li>
</ul>
<p>Log in to your dashboard to view the details and respond.</p>`,
		vendorName, l.CompanyName, l.Category, l.Postcode)
	return s.send(to, subject, body)
}

// SendReviewRequest invites a customer to review a vendor
func (s *Sender) SendReviewRequest(to, vendorName, link string) error {
	subject := fmt.Sprintf("How was your experience with %s?", vendorName)
	body := fmt.Sprintf(
		`<p>Hi,</p>
<p>You recently worked with %s through TendorAI. We'd love to hear how it went.</p>
<p><a href="%s">Leave a review</a>. It takes under a minute.</p>
<p>This link expires in 30 days.</p>`,
		vendorName, link)
	return s.send(to, subject, body)
}
