package contact

import (
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/ajmarsh/context-collapse-server/internal/model"
)

// Config holds configuration for the contact service
type Config struct {
	// Recipient is the address contact-form messages are relayed to
	Recipient string
	// MaxMessageLength bounds the relayed message body
	MaxMessageLength int
}

// DefaultConfig returns default contact configuration
func DefaultConfig() Config {
	return Config{
		MaxMessageLength: 5000,
	}
}

// Message is a contact-form submission
type Message struct {
	Email   string
	Name    string
	Message string
}

// Service validates contact-form submissions and relays them by mail
type Service struct {
	mailer Mailer
	logger *slog.Logger
	cfg    Config
}

// New creates a new contact Service
func New(mailer Mailer, cfg Config, logger *slog.Logger) *Service {
	if cfg.MaxMessageLength == 0 {
		cfg.MaxMessageLength = DefaultConfig().MaxMessageLength
	}
	return &Service{
		mailer: mailer,
		logger: logger,
		cfg:    cfg,
	}
}

// Relay validates a contact message and sends it to the configured
// recipient. Invalid input returns a validation sentinel; transport
// failures are logged and wrapped in model.ErrUpstreamFailure.
func (s *Service) Relay(msg Message) error {
	addr, err := mail.ParseAddress(msg.Email)
	if err != nil {
		return model.ErrInvalidEmail
	}

	// The name ends up in the Subject header; a CR or LF in it would let
	// the sender inject arbitrary SMTP headers into the relayed message.
	if strings.ContainsAny(msg.Name, "\r\n") {
		return model.ErrInvalidName
	}

	body := strings.TrimSpace(msg.Message)
	if body == "" {
		return model.ErrEmptyMessage
	}
	if len(body) > s.cfg.MaxMessageLength {
		// Back up to a rune boundary so truncation never splits a
		// multi-byte character
		cut := s.cfg.MaxMessageLength
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut]
	}

	subject := "Context Collapse contact form"
	if msg.Name != "" {
		subject = fmt.Sprintf("%s: %s", subject, msg.Name)
	}

	relayed := fmt.Sprintf("From: %s\n\n%s", addr.Address, body)

	if err := s.mailer.Send(s.cfg.Recipient, subject, relayed); err != nil {
		s.logger.Error("contact relay failed", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %v", model.ErrUpstreamFailure, err)
	}

	return nil
}
