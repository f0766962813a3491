package response

import (
	"time"

	"github.com/ajmarsh/context-collapse-server/internal/model"
)

// Score represents a leaderboard row in API responses. The session and
// score tokens are deliberately absent from the projection.
type Score struct {
	Score      int       `json:"score"`
	Name       string    `json:"name"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ScoreFromModel converts a model.Score to a response Score
func ScoreFromModel(s *model.Score) Score {
	return Score{
		Score:      s.Score,
		Name:       s.Name,
		Difficulty: string(s.Difficulty),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

// ScoresFromModels converts a slice of model scores, never returning nil
// so empty leaderboards encode as [] rather than null
func ScoresFromModels(scores []*model.Score) []Score {
	result := make([]Score, len(scores))
	for i, s := range scores {
		result[i] = ScoreFromModel(s)
	}
	return result
}

// Leaderboard is the response for the leaderboard query, one list per
// difficulty
type Leaderboard struct {
	Easy   []Score `json:"easy"`
	Normal []Score `json:"normal"`
	Hard   []Score `json:"hard"`
}

// Token is the response for issuing a session token
type Token struct {
	Token string `json:"token"`
}
