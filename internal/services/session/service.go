package session

import (
	"context"
	"log/slog"
	"time"

	"github.com/ajmarsh/context-collapse-server/internal/dependencies/clock"
	"github.com/ajmarsh/context-collapse-server/internal/dependencies/random"
	"github.com/ajmarsh/context-collapse-server/internal/model"
	"github.com/ajmarsh/context-collapse-server/internal/storage"
)

// TokenBytes is the number of random bytes in a session token.
// Tokens are hex-encoded, so the wire form is twice this long.
const TokenBytes = 32

// Config holds configuration for the session service
type Config struct {
	// StaleAfter is how long a session may go without a check-in before
	// it is considered dead and eligible for deletion. A policy choice,
	// not a structural one; clients check in every 30 seconds, so 24
	// hours of silence means the game is long gone.
	StaleAfter time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		StaleAfter: 24 * time.Hour,
	}
}

// Service manages the anti-cheat game session lifecycle: issuing tokens,
// recording check-ins, and computing the staleness cutoff the janitor
// sweeps against.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger

	staleAfter time.Duration
}

// New creates a new session Service
func New(storage storage.Storage, clk clock.Clock, rnd random.Random, cfg Config, logger *slog.Logger) *Service {
	if cfg.StaleAfter == 0 {
		cfg.StaleAfter = DefaultConfig().StaleAfter
	}
	return &Service{
		storage:    storage,
		clock:      clk,
		random:     rnd,
		logger:     logger,
		staleAfter: cfg.StaleAfter,
	}
}

// Issue creates a new game session and returns it. The token is only
// handed out once the session has been persisted.
func (s *Service) Issue(ctx context.Context) (*model.GameSession, error) {
	now := s.clock.Now()

	session := &model.GameSession{
		Token:                model.SessionToken(s.random.HexToken(TokenBytes)),
		InitialTimestamp:     now.Unix(),
		LastCheckInTimestamp: now.Unix(),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		s.logger.Error("failed to persist game session", slog.String("error", err.Error()))
		return nil, err
	}

	return session, nil
}

// CheckIn records liveness for a session, bumping its last check-in
// timestamp to now. The initial timestamp is never touched. Returns
// model.ErrSessionNotFound for an unknown token.
func (s *Service) CheckIn(ctx context.Context, token model.SessionToken) error {
	return s.storage.CheckInSession(ctx, token, s.clock.Now())
}

// StaleCutoff returns the instant before which a last check-in marks a
// session as stale, as of now.
func (s *Service) StaleCutoff() time.Time {
	return s.clock.Now().Add(-s.staleAfter)
}
