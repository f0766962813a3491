package contact

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/ajmarsh/context-collapse-server/internal/model"
)

// Mailer sends a single email. The service depends on this interface so
// handlers and tests can substitute a fake transport.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPConfig holds SMTP transport credentials (from process configuration)
type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// SMTPMailer sends mail through an authenticated SMTP relay
type SMTPMailer struct {
	cfg SMTPConfig
}

// Ensure SMTPMailer implements Mailer
var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPMailer{cfg: cfg}
}

// Send delivers one plain-text message via the configured relay
func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.cfg.Host == "" || m.cfg.User == "" || m.cfg.Pass == "" || m.cfg.From == "" {
		return model.ErrMailNotConfigured
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
}
