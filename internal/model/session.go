package model

import "time"

// SessionToken is the opaque anti-cheat credential handed to a game client
type SessionToken string

// GameSession is the ephemeral anti-cheat record for one running game.
// It proves "this client started a game recently and is still playing";
// it carries no player identity and has no relationship to Score rows.
type GameSession struct {
	Token SessionToken

	// Unix seconds at issuance. Never mutated after creation.
	InitialTimestamp int64

	// Unix seconds at the most recent check-in. Initialized equal to
	// InitialTimestamp; invariant: LastCheckInTimestamp >= InitialTimestamp.
	LastCheckInTimestamp int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaleAt reports whether the session has gone stale as of now,
// given the configured staleness threshold.
func (s *GameSession) StaleAt(now time.Time, staleAfter time.Duration) bool {
	return now.Unix()-s.LastCheckInTimestamp > int64(staleAfter.Seconds())
}
