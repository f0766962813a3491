package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Score validation errors (malformed or out-of-policy input)
	ErrMissingField      = errors.New("missing required field")
	ErrNameTooLong       = errors.New("name provided is too long")
	ErrInvalidDifficulty = errors.New("difficulty provided is invalid")
	ErrInvalidScore      = errors.New("score provided is invalid")
	ErrInvalidNameChars  = errors.New("name has invalid characters")

	// Anti-cheat errors (missing, implausible, or stale session)
	ErrInvalidSessionToken = errors.New("no valid token provided")
	ErrCheatingDetected    = errors.New("score invalid: cheating detected")
	ErrCheckInNotCurrent   = errors.New("score invalid: check-in not current")

	// Merge outcome: valid submission that does not beat the stored best.
	// A normal result, not a failure.
	ErrNotHighScore = errors.New("not a new high score")

	// Score errors
	ErrScoreNotFound = errors.New("score not found")

	// Contact errors
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrInvalidName       = errors.New("name must not contain line breaks")
	ErrEmptyMessage      = errors.New("message must not be empty")
	ErrMailNotConfigured = errors.New("mail transport not configured")

	// Upstream errors (third-party API or mail transport)
	ErrUpstreamFailure = errors.New("upstream request failed")
)
