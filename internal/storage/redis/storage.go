package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ajmarsh/context-collapse-server/internal/model"
	"github.com/ajmarsh/context-collapse-server/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// Documents are stored as JSON under per-entity keys; secondary indexes
// (a check-in ZSET for the janitor, a per-difficulty leaderboard ZSET,
// and a per-player score-ID SET) are kept in step with the documents
// through pipelined writes.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Session operations

func (s *Storage) SaveSession(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}

	// Keep the check-in index in step with the document
	pipe := s.client.Pipeline()
	pipe.Set(ctx, sessionKey(session.Token), data, 0)
	pipe.ZAdd(ctx, sessionCheckInIndexKey(), redis.Z{
		Score:  float64(session.LastCheckInTimestamp),
		Member: string(session.Token),
	})
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetSession(ctx context.Context, token model.SessionToken) (*model.GameSession, error) {
	data, err := s.client.Get(ctx, sessionKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrSessionNotFound
		}
		return nil, err
	}

	var session model.GameSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Storage) CheckInSession(ctx context.Context, token model.SessionToken, at time.Time) error {
	session, err := s.GetSession(ctx, token)
	if err != nil {
		return err
	}

	session.LastCheckInTimestamp = at.Unix()
	session.UpdatedAt = at

	return s.SaveSession(ctx, session)
}

func (s *Storage) DeleteStaleSessions(ctx context.Context, cutoff time.Time) (int, error) {
	indexKey := sessionCheckInIndexKey()
	max := strconv.FormatInt(cutoff.Unix(), 10)

	tokens, err := s.client.ZRangeByScore(ctx, indexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: max,
	}).Result()
	if err != nil {
		return 0, err
	}

	if len(tokens) == 0 {
		return 0, nil
	}

	pipe := s.client.Pipeline()
	for _, token := range tokens {
		pipe.Del(ctx, sessionKey(model.SessionToken(token)))
		pipe.ZRem(ctx, indexKey, token)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}

	return len(tokens), nil
}

// Score operations

func (s *Storage) SaveScore(ctx context.Context, score *model.Score) error {
	data, err := json.Marshal(score)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, scoreKey(score.ID), data, 0)
	pipe.ZAdd(ctx, leaderboardIndexKey(score.Difficulty), redis.Z{
		Score:  float64(score.Score),
		Member: score.ID,
	})
	pipe.SAdd(ctx, playerScoresIndexKey(score.ScoreToken), score.ID)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetPlayerScore(ctx context.Context, difficulty model.Difficulty, token model.ScoreToken) (*model.Score, error) {
	scores, err := s.scoresForPlayer(ctx, token)
	if err != nil {
		return nil, err
	}

	var best *model.Score
	for _, score := range scores {
		if score.Difficulty != difficulty {
			continue
		}
		if best == nil || score.Score > best.Score {
			best = score
		}
	}
	if best == nil {
		return nil, model.ErrScoreNotFound
	}
	return best, nil
}

func (s *Storage) TopScores(ctx context.Context, difficulty model.Difficulty, offset, limit int) ([]*model.Score, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		return []*model.Score{}, nil
	}

	ids, err := s.client.ZRevRange(ctx, leaderboardIndexKey(difficulty),
		int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, err
	}

	return s.fetchScores(ctx, ids)
}

func (s *Storage) RenamePlayer(ctx context.Context, token model.ScoreToken, name string, at time.Time) error {
	scores, err := s.scoresForPlayer(ctx, token)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	for _, score := range scores {
		if score.Name == name {
			continue
		}
		score.Name = name
		score.UpdatedAt = at
		data, err := json.Marshal(score)
		if err != nil {
			return err
		}
		pipe.Set(ctx, scoreKey(score.ID), data, 0)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// scoresForPlayer loads every score document indexed under a score token
func (s *Storage) scoresForPlayer(ctx context.Context, token model.ScoreToken) ([]*model.Score, error) {
	ids, err := s.client.SMembers(ctx, playerScoresIndexKey(token)).Result()
	if err != nil {
		return nil, err
	}
	return s.fetchScores(ctx, ids)
}

// fetchScores MGETs and decodes score documents, skipping missing entries
func (s *Storage) fetchScores(ctx context.Context, ids []string) ([]*model.Score, error) {
	if len(ids) == 0 {
		return []*model.Score{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = scoreKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	scores := make([]*model.Score, 0, len(values))
	for _, val := range values {
		if val == nil {
			continue // Index may briefly lead the documents
		}
		var score model.Score
		if err := json.Unmarshal([]byte(val.(string)), &score); err != nil {
			continue // Skip invalid data
		}
		scores = append(scores, &score)
	}
	return scores, nil
}
