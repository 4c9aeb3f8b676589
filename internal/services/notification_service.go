// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/rmagrichem/agrichem-backend/internal/config"
	"github.com/rmagrichem/agrichem-backend/internal/models"
)

// NotificationService sends transactional email to the sales inbox.
// Unconfigured SMTP means notifications are silently skipped; the
// storefront keeps working without them.
type NotificationService struct {
	cfg *config.Config
}

const enquiryEmailTemplate = `
<h2>New Contact Enquiry</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
{{if .Location}}<p><strong>Location:</strong> {{.Location}}</p>{{end}}
<p><strong>Message:</strong></p>
<blockquote>{{.Message}}</blockquote>
<p>Received at {{.ReceivedAt.Format "02 Jan 2006 15:04 MST"}}</p>
`

func NewNotificationService(cfg *config.Config) *NotificationService {
	return &NotificationService{cfg: cfg}
}

func (s *NotificationService) SendEnquiryNotification(enquiry *models.ContactEnquiry) error {
	if s.cfg.Email.SMTPUsername == "" {
		return nil
	}

	body, err := renderTemplate(enquiryEmailTemplate, enquiry)
	if err != nil {
		return fmt.Errorf("failed to render enquiry email: %w", err)
	}

	subject := fmt.Sprintf("New website enquiry from %s", enquiry.Name)
	return s.sendEmail(s.cfg.Email.SalesEmail, subject, body)
}

func (s *NotificationService) sendEmail(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Email.FromEmail, s.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func renderTemplate(tmpl string, data interface{}) (string, error) {
	t, err := template.New("email").Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
