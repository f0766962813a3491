package scores

import (
	"strings"

	"github.com/ajmarsh/context-collapse-server/internal/model"
)

// AllowedNameChars is the set of characters a display name may contain,
// after case-folding.
const AllowedNameChars = "abcdefghijklmnopqrstuvwxyz1234567890!@#$%^&*-_+=~ "

// Submission is a score submission as received from a game client
type Submission struct {
	Name         string
	Score        int
	Difficulty   string
	ScoreToken   model.ScoreToken
	SessionToken model.SessionToken
}

// validate applies the input-policy checks to a submission, in order,
// returning the first failure. It is pure: no clock, no storage. The
// anti-cheat checks, which need session state, live in Submit.
func (s *Service) validate(sub Submission) (model.Difficulty, error) {
	if sub.Name == "" || sub.Difficulty == "" || sub.ScoreToken == "" || sub.SessionToken == "" {
		return "", model.ErrMissingField
	}

	if len([]rune(sub.Name)) > s.cfg.MaxNameLength {
		return "", model.ErrNameTooLong
	}

	difficulty, err := model.ParseDifficulty(sub.Difficulty)
	if err != nil {
		return "", err
	}

	if sub.Score < 0 || sub.Score > s.cfg.MaxScore {
		return "", model.ErrInvalidScore
	}

	for _, r := range strings.ToLower(sub.Name) {
		if !strings.ContainsRune(AllowedNameChars, r) {
			return "", model.ErrInvalidNameChars
		}
	}

	return difficulty, nil
}
