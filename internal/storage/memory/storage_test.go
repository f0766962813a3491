package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajmarsh/context-collapse-server/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
	now     time.Time
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
	s.now = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
}

func (s *StorageSuite) saveSession(token model.SessionToken, lastCheckIn time.Time) {
	err := s.storage.SaveSession(s.ctx, &model.GameSession{
		Token:                token,
		InitialTimestamp:     lastCheckIn.Unix(),
		LastCheckInTimestamp: lastCheckIn.Unix(),
		CreatedAt:            lastCheckIn,
		UpdatedAt:            lastCheckIn,
	})
	s.Require().NoError(err)
}

func (s *StorageSuite) saveScore(id string, score int, difficulty model.Difficulty, token model.ScoreToken) {
	err := s.storage.SaveScore(s.ctx, &model.Score{
		ID:         id,
		Score:      score,
		Name:       "player",
		Difficulty: difficulty,
		ScoreToken: token,
		CreatedAt:  s.now,
		UpdatedAt:  s.now,
	})
	s.Require().NoError(err)
}

// Session tests

func (s *StorageSuite) TestSaveAndGetSession() {
	s.saveSession("tok", s.now)

	got, err := s.storage.GetSession(s.ctx, "tok")
	s.Require().NoError(err)
	s.Equal(model.SessionToken("tok"), got.Token)
	s.Equal(s.now.Unix(), got.InitialTimestamp)
}

func (s *StorageSuite) TestGetSessionNotFound() {
	_, err := s.storage.GetSession(s.ctx, "missing")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestGetSessionReturnsCopy() {
	s.saveSession("tok", s.now)

	got, err := s.storage.GetSession(s.ctx, "tok")
	s.Require().NoError(err)
	got.LastCheckInTimestamp = 0

	again, err := s.storage.GetSession(s.ctx, "tok")
	s.Require().NoError(err)
	s.Equal(s.now.Unix(), again.LastCheckInTimestamp)
}

func (s *StorageSuite) TestCheckInSessionBumpsLastCheckIn() {
	s.saveSession("tok", s.now)
	later := s.now.Add(30 * time.Second)

	err := s.storage.CheckInSession(s.ctx, "tok", later)
	s.Require().NoError(err)

	got, err := s.storage.GetSession(s.ctx, "tok")
	s.Require().NoError(err)
	s.Equal(later.Unix(), got.LastCheckInTimestamp)
	s.Equal(s.now.Unix(), got.InitialTimestamp)
}

func (s *StorageSuite) TestCheckInSessionNotFound() {
	err := s.storage.CheckInSession(s.ctx, "missing", s.now)
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *StorageSuite) TestDeleteStaleSessions() {
	s.saveSession("old1", s.now.Add(-48*time.Hour))
	s.saveSession("old2", s.now.Add(-25*time.Hour))
	s.saveSession("live", s.now)

	deleted, err := s.storage.DeleteStaleSessions(s.ctx, s.now.Add(-24*time.Hour))
	s.Require().NoError(err)
	s.Equal(2, deleted)

	_, err = s.storage.GetSession(s.ctx, "old1")
	s.ErrorIs(err, model.ErrSessionNotFound)
	_, err = s.storage.GetSession(s.ctx, "live")
	s.NoError(err)
}

func (s *StorageSuite) TestDeleteStaleSessionsCutoffIsInclusive() {
	cutoff := s.now.Add(-24 * time.Hour)
	s.saveSession("edge", cutoff)

	deleted, err := s.storage.DeleteStaleSessions(s.ctx, cutoff)
	s.Require().NoError(err)
	s.Equal(1, deleted)
}

// Score tests

func (s *StorageSuite) TestSaveAndGetPlayerScore() {
	s.saveScore("id1", 100, model.DifficultyEasy, "tok")

	got, err := s.storage.GetPlayerScore(s.ctx, model.DifficultyEasy, "tok")
	s.Require().NoError(err)
	s.Equal(100, got.Score)
	s.Equal("id1", got.ID)
}

func (s *StorageSuite) TestGetPlayerScoreNotFound() {
	_, err := s.storage.GetPlayerScore(s.ctx, model.DifficultyEasy, "missing")
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *StorageSuite) TestGetPlayerScoreScopedToDifficulty() {
	s.saveScore("id1", 100, model.DifficultyEasy, "tok")

	_, err := s.storage.GetPlayerScore(s.ctx, model.DifficultyHard, "tok")
	s.ErrorIs(err, model.ErrScoreNotFound)
}

func (s *StorageSuite) TestSaveScoreOverwritesByID() {
	s.saveScore("id1", 100, model.DifficultyEasy, "tok")
	s.saveScore("id1", 200, model.DifficultyEasy, "tok")

	got, err := s.storage.GetPlayerScore(s.ctx, model.DifficultyEasy, "tok")
	s.Require().NoError(err)
	s.Equal(200, got.Score)

	rows, err := s.storage.TopScores(s.ctx, model.DifficultyEasy, 0, 10)
	s.Require().NoError(err)
	s.Len(rows, 1)
}

func (s *StorageSuite) TestTopScoresOrderAndPaging() {
	for i := 1; i <= 15; i++ {
		s.saveScore(fmt.Sprintf("id%02d", i), i*10, model.DifficultyNormal, model.ScoreToken(fmt.Sprintf("tok%02d", i)))
	}

	first, err := s.storage.TopScores(s.ctx, model.DifficultyNormal, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(first, 10)
	s.Equal(150, first[0].Score)
	s.Equal(60, first[9].Score)

	second, err := s.storage.TopScores(s.ctx, model.DifficultyNormal, 10, 10)
	s.Require().NoError(err)
	s.Require().Len(second, 5)
	s.Equal(50, second[0].Score)
	s.Equal(10, second[4].Score)
}

func (s *StorageSuite) TestTopScoresPastEndIsEmpty() {
	s.saveScore("id1", 100, model.DifficultyEasy, "tok")

	rows, err := s.storage.TopScores(s.ctx, model.DifficultyEasy, 50, 10)
	s.Require().NoError(err)
	s.Empty(rows)
}

func (s *StorageSuite) TestTopScoresTieBreakIsStable() {
	s.saveScore("a", 100, model.DifficultyEasy, "tok1")
	s.saveScore("b", 100, model.DifficultyEasy, "tok2")

	// Equal scores order by descending ID, same as the redis backend
	rows, err := s.storage.TopScores(s.ctx, model.DifficultyEasy, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal("b", rows[0].ID)
	s.Equal("a", rows[1].ID)
}

func (s *StorageSuite) TestRenamePlayer() {
	s.saveScore("id1", 100, model.DifficultyEasy, "tok")
	s.saveScore("id2", 50, model.DifficultyHard, "tok")
	s.saveScore("id3", 75, model.DifficultyEasy, "other")

	at := s.now.Add(time.Minute)
	err := s.storage.RenamePlayer(s.ctx, "tok", "Alice", at)
	s.Require().NoError(err)

	for _, difficulty := range []model.Difficulty{model.DifficultyEasy, model.DifficultyHard} {
		row, err := s.storage.GetPlayerScore(s.ctx, difficulty, "tok")
		s.Require().NoError(err)
		s.Equal("Alice", row.Name)
		s.Equal(at, row.UpdatedAt)
	}

	other, err := s.storage.GetPlayerScore(s.ctx, model.DifficultyEasy, "other")
	s.Require().NoError(err)
	s.Equal("player", other.Name)
}

func (s *StorageSuite) TestRenamePlayerSameNameLeavesUpdatedAt() {
	s.saveScore("id1", 100, model.DifficultyEasy, "tok")

	err := s.storage.RenamePlayer(s.ctx, "tok", "player", s.now.Add(time.Minute))
	s.Require().NoError(err)

	row, err := s.storage.GetPlayerScore(s.ctx, model.DifficultyEasy, "tok")
	s.Require().NoError(err)
	s.Equal(s.now, row.UpdatedAt)
}
