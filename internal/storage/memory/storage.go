package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ajmarsh/context-collapse-server/internal/model"
	"github.com/ajmarsh/context-collapse-server/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	sessions map[model.SessionToken]*model.GameSession
	scores   map[string]*model.Score // keyed by score ID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		sessions: make(map[model.SessionToken]*model.GameSession),
		scores:   make(map[string]*model.Score),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.Token] = &cp
	return nil
}

func (s *Storage) GetSession(ctx context.Context, token model.SessionToken) (*model.GameSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[token]
	if !ok {
		return nil, model.ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (s *Storage) CheckInSession(ctx context.Context, token model.SessionToken, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok {
		return model.ErrSessionNotFound
	}
	session.LastCheckInTimestamp = at.Unix()
	session.UpdatedAt = at
	return nil
}

func (s *Storage) DeleteStaleSessions(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := 0
	for token, session := range s.sessions {
		if session.LastCheckInTimestamp <= cutoff.Unix() {
			delete(s.sessions, token)
			deleted++
		}
	}
	return deleted, nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *score
	s.scores[score.ID] = &cp
	return nil
}

func (s *Storage) GetPlayerScore(ctx context.Context, difficulty model.Difficulty, token model.ScoreToken) (*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var best *model.Score
	for _, score := range s.scores {
		if score.Difficulty != difficulty || score.ScoreToken != token {
			continue
		}
		if best == nil || score.Score > best.Score {
			best = score
		}
	}
	if best == nil {
		return nil, model.ErrScoreNotFound
	}
	cp := *best
	return &cp, nil
}

func (s *Storage) TopScores(ctx context.Context, difficulty model.Difficulty, offset, limit int) ([]*model.Score, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rows []*model.Score
	for _, score := range s.scores {
		if score.Difficulty == difficulty {
			rows = append(rows, score)
		}
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Score != rows[j].Score {
			return rows[i].Score > rows[j].Score
		}
		// Tie-break on descending ID, matching how a Redis ZREVRANGE
		// orders equal-score members, so pagination agrees across backends
		return rows[i].ID > rows[j].ID
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(rows) {
		return []*model.Score{}, nil
	}
	end := offset + limit
	if limit <= 0 || end > len(rows) {
		end = len(rows)
	}

	result := make([]*model.Score, 0, end-offset)
	for _, row := range rows[offset:end] {
		cp := *row
		result = append(result, &cp)
	}
	return result, nil
}

func (s *Storage) RenamePlayer(ctx context.Context, token model.ScoreToken, name string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, score := range s.scores {
		if score.ScoreToken == token && score.Name != name {
			score.Name = name
			score.UpdatedAt = at
		}
	}
	return nil
}
