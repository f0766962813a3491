package model

import (
	"strings"
	"time"
)

// Difficulty is the closed set of game difficulties
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Difficulties lists all valid difficulties in display order
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParseDifficulty parses a difficulty case-insensitively
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(s)) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// ScoreToken is the opaque client-supplied identifier grouping all of one
// player's scores across difficulties. It is an identity/merge key, not a
// credential, and must never appear in API responses.
type ScoreToken string

// Score is a persisted high-score record. At most one row exists per
// (Difficulty, ScoreToken) pair; the scores service enforces this by
// merging on submit rather than via a storage uniqueness constraint.
type Score struct {
	ID         string
	Score      int
	Name       string
	Difficulty Difficulty
	ScoreToken ScoreToken
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
