package storage

import (
	"context"
	"time"

	"github.com/ajmarsh/context-collapse-server/internal/model"
)

// Storage defines the interface for data persistence.
//
// All mutation is single-document: the services never need a multi-step
// transaction, so implementations only have to make each call atomic on
// its own.
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.GameSession) error
	GetSession(ctx context.Context, token model.SessionToken) (*model.GameSession, error)
	// CheckInSession sets the session's last check-in timestamp. It returns
	// model.ErrSessionNotFound if no session matches the token and must not
	// touch any other session.
	CheckInSession(ctx context.Context, token model.SessionToken, at time.Time) error
	// DeleteStaleSessions removes every session whose last check-in is at or
	// before the cutoff, returning how many were deleted.
	DeleteStaleSessions(ctx context.Context, cutoff time.Time) (int, error)

	// Score operations
	SaveScore(ctx context.Context, score *model.Score) error
	// GetPlayerScore returns the best stored row for the pair, or
	// model.ErrScoreNotFound.
	GetPlayerScore(ctx context.Context, difficulty model.Difficulty, token model.ScoreToken) (*model.Score, error)
	// TopScores returns rows for a difficulty ordered by score descending,
	// skipping offset rows and returning at most limit.
	TopScores(ctx context.Context, difficulty model.Difficulty, offset, limit int) ([]*model.Score, error)
	// RenamePlayer sets the display name on every score row sharing the
	// score token. A no-op when the player has no rows yet.
	RenamePlayer(ctx context.Context, token model.ScoreToken, name string, at time.Time) error
}
