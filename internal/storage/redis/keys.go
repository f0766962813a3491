package redis

import (
	"fmt"

	"github.com/ajmarsh/context-collapse-server/internal/model"
)

// Key prefix for all leaderboard-related data
const keyPrefix = "ccgame"

// sessionKey returns the Redis key for a GameSession document
func sessionKey(token model.SessionToken) string {
	return fmt.Sprintf("%s:session:%s", keyPrefix, token)
}

// sessionCheckInIndexKey returns the Redis key for the ZSET of session
// tokens scored by last check-in timestamp (used by the janitor sweep)
func sessionCheckInIndexKey() string {
	return fmt.Sprintf("%s:idx:sessions_by_checkin", keyPrefix)
}

// scoreKey returns the Redis key for a Score document
func scoreKey(id string) string {
	return fmt.Sprintf("%s:score:%s", keyPrefix, id)
}

// leaderboardIndexKey returns the Redis key for the per-difficulty ZSET of
// score IDs scored by score value
func leaderboardIndexKey(difficulty model.Difficulty) string {
	return fmt.Sprintf("%s:idx:leaderboard:%s", keyPrefix, difficulty)
}

// playerScoresIndexKey returns the Redis key for the SET of score IDs
// belonging to one score token (used for merge lookup and renames)
func playerScoresIndexKey(token model.ScoreToken) string {
	return fmt.Sprintf("%s:idx:player_scores:%s", keyPrefix, token)
}
