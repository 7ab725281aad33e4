package notifications

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/smtp"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

// SMTPService implements domain.NotificationService
type SMTPService struct {
	host      string
	port      int
	from      string
	auth      smtp.Auth
	templates *template.Template
}

// NewSMTPService creates a new SMTP notification service. Templates are
// embedded at build time so mail rendering never depends on the working
// directory.
func NewSMTPService(host string, port int, from, username, password string) (domain.NotificationService, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPService{
		host:      host,
		port:      port,
		from:      from,
		auth:      auth,
		templates: templates,
	}, nil
}

// Send implements domain.NotificationService. When no SMTP host is
// configured the mail is logged instead of delivered, which keeps local
// development working without a mail server.
func (s *SMTPService) Send(to, subject, templateName string, data map[string]any) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("failed to render mail template %s: %w", templateName, err)
	}

	if s.host == "" {
		log.Printf("[MOCK MAIL] To: %s, Subject: %s, Data: %v", to, subject, data)
		return nil
	}

	msg := bytes.Buffer{}
	fmt.Fprintf(&msg, "From: %s\r\n", s.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	if err := smtp.SendMail(addr, s.auth, s.from, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}
