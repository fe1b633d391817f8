// Package email sends outreach emails over SMTP.
package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jobbuddy/backend/config"
)

// Sender delivers generated outreach emails via SMTP when configured.
type Sender struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
}

func NewSender(cfg *config.Config) *Sender {
	return &Sender{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.SMTPFromEmail,
	}
}

// IsConfigured reports whether the SMTP credentials are present. When false,
// outreach emails can only be tracked as drafts, never sent.
func (s *Sender) IsConfigured() bool {
	return s.host != "" && s.port != "" && s.username != "" && s.password != ""
}

// Send delivers one plain-text email on behalf of the user.
func (s *Sender) Send(to, subject, body string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("email sender is not configured")
	}

	var msg strings.Builder
	msg.WriteString("From: " + s.fromEmail + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := s.host + ":" + s.port
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	if err := smtp.SendMail(addr, auth, s.fromEmail, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
