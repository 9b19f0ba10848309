package services

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"path/filepath"
	"strings"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Println("MailService disabled: missing SMTP environment variables")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: GILab <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		err := smtp.SendMail(addr, auth, s.From, to, msg)
		if err != nil {
			log.Printf("Failed to send email to %v: %v", to, err)
		} else {
			log.Printf("Email sent to %v: %s", to, subject)
		}
	}()
}

func (s *MailService) parseTemplate(templateName string, data interface{}) (string, error) {
	// Assuming templates are in "web/templates/email/"
	// We might need to adjust path depending on where the binary runs.
	path := filepath.Join("web", "templates", "email", templateName)
	t, err := template.ParseFiles(path)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", templateName, err)
	}
	return buf.String(), nil
}

// SendApprovalEmail tells a user their account was approved and login works
// now.
func (s *MailService) SendApprovalEmail(email, name string) {
	body, err := s.parseTemplate("approved.html", map[string]string{
		"Name":    name,
		"SiteURL": os.Getenv("SITE_URL"),
	})
	if err != nil {
		log.Printf("Error rendering approval email: %v", err)
		return
	}
	s.sendAsync([]string{email}, "Your GILab account has been approved", body)
}

// SendContactNotification forwards a contact form submission to the lab
// contact address.
func (s *MailService) SendContactNotification(to, name, email, subject, message string) {
	if to == "" {
		return
	}
	body, err := s.parseTemplate("contact.html", map[string]string{
		"Name":    name,
		"Email":   email,
		"Subject": subject,
		"Message": message,
	})
	if err != nil {
		log.Printf("Error rendering contact email: %v", err)
		return
	}
	s.sendAsync([]string{to}, "[Contact] "+subject, body)
}
