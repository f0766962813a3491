package scores

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ajmarsh/context-collapse-server/internal/dependencies/clock"
	"github.com/ajmarsh/context-collapse-server/internal/model"
	"github.com/ajmarsh/context-collapse-server/internal/storage"
)

// Config holds the score-policy constants. The anti-cheat numbers are
// product-tuned heuristics, kept configurable rather than hard-coded.
type Config struct {
	// MaxScore is the upper bound on a submitted score
	MaxScore int
	// MaxNameLength is the maximum display name length in characters
	MaxNameLength int
	// ScoreRate is the most generous plausible scoring rate, in points
	// per second, assuming the hardest difficulty
	ScoreRate float64
	// CheckInWindow is how recently a session must have checked in for a
	// submission to count as coming from a live game. Clients check in
	// every 30 seconds; the extra 15 is slack for slow connections.
	CheckInWindow time.Duration
	// PageSize is the leaderboard page size
	PageSize int
}

// DefaultConfig returns the default score policy
func DefaultConfig() Config {
	return Config{
		MaxScore:      100_000_000,
		MaxNameLength: 30,
		ScoreRate:     2,
		CheckInWindow: 45 * time.Second,
		PageSize:      10,
	}
}

// Service validates score submissions against session state, merges them
// into per-player high-score records, and serves leaderboard queries.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
	cfg     Config
}

// New creates a new scores Service
func New(storage storage.Storage, clk clock.Clock, cfg Config, logger *slog.Logger) *Service {
	def := DefaultConfig()
	if cfg.MaxScore == 0 {
		cfg.MaxScore = def.MaxScore
	}
	if cfg.MaxNameLength == 0 {
		cfg.MaxNameLength = def.MaxNameLength
	}
	if cfg.ScoreRate == 0 {
		cfg.ScoreRate = def.ScoreRate
	}
	if cfg.CheckInWindow == 0 {
		cfg.CheckInWindow = def.CheckInWindow
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = def.PageSize
	}
	return &Service{
		storage: storage,
		clock:   clk,
		logger:  logger,
		cfg:     cfg,
	}
}

// Submit validates a submission and merges it into the player's stored
// high score for the difficulty.
//
// Returns the inserted or updated row on success. Failures are the
// model.ErrInvalid*/ErrCheating*/ErrCheckIn* sentinels for policy and
// anti-cheat violations, and model.ErrNotHighScore when the submission
// is valid but does not beat the stored best (a normal outcome).
func (s *Service) Submit(ctx context.Context, sub Submission) (*model.Score, error) {
	difficulty, err := s.validate(sub)
	if err != nil {
		return nil, err
	}

	session, err := s.storage.GetSession(ctx, sub.SessionToken)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, model.ErrInvalidSessionToken
		}
		return nil, err
	}

	now := s.clock.Now()

	// The claimed score must have been achievable in the time since the
	// session was issued. Deliberately permissive: favors false negatives
	// over rejecting honest players.
	if float64(now.Unix()-session.InitialTimestamp) < float64(sub.Score)/s.cfg.ScoreRate {
		return nil, model.ErrCheatingDetected
	}

	if now.Unix()-session.LastCheckInTimestamp > int64(s.cfg.CheckInWindow.Seconds()) {
		return nil, model.ErrCheckInNotCurrent
	}

	return s.merge(ctx, sub, difficulty, now)
}

// merge applies the high-score merge decision for a validated submission
func (s *Service) merge(ctx context.Context, sub Submission, difficulty model.Difficulty, now time.Time) (*model.Score, error) {
	// A rename takes effect across every row the player owns, whether or
	// not the score itself is accepted.
	if err := s.storage.RenamePlayer(ctx, sub.ScoreToken, sub.Name, now); err != nil {
		return nil, err
	}

	existing, err := s.storage.GetPlayerScore(ctx, difficulty, sub.ScoreToken)
	if err != nil {
		if !errors.Is(err, model.ErrScoreNotFound) {
			return nil, err
		}

		record := &model.Score{
			ID:         uuid.NewString(),
			Score:      sub.Score,
			Name:       sub.Name,
			Difficulty: difficulty,
			ScoreToken: sub.ScoreToken,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.storage.SaveScore(ctx, record); err != nil {
			return nil, err
		}
		return record, nil
	}

	if sub.Score <= existing.Score {
		return nil, model.ErrNotHighScore
	}

	existing.Score = sub.Score
	existing.Name = sub.Name
	existing.UpdatedAt = now
	if err := s.storage.SaveScore(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Leaderboard returns one page of scores for a difficulty, ordered by
// score descending. Pages are 1-based; page values below 1 are treated
// as the first page.
func (s *Service) Leaderboard(ctx context.Context, difficulty model.Difficulty, page int) ([]*model.Score, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * s.cfg.PageSize
	return s.storage.TopScores(ctx, difficulty, offset, s.cfg.PageSize)
}
