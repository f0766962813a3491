package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/ajmarsh/context-collapse-server/internal/dependencies/mocks"
	"github.com/ajmarsh/context-collapse-server/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
	MockMailer *MockMailer
}

// MockMailer records sent mail instead of delivering it
type MockMailer struct {
	Sent []SentMail
	Err  error
}

// SentMail is one recorded Send call
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// Send records the message, returning the configured error if any
func (m *MockMailer) Send(to, subject, body string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	return NewTestAppWithConfig(Config{})
}

// NewTestAppWithConfig creates a TestApp with custom service configs
func NewTestAppWithConfig(cfg Config) *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	mockMailer := &MockMailer{}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	app := newWithDependencies(store, mockClock, mockRandom, cfg, mockMailer, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
		MockMailer: mockMailer,
	}
}
