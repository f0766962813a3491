package janitor

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajmarsh/context-collapse-server/internal/dependencies/mocks"
	"github.com/ajmarsh/context-collapse-server/internal/model"
	"github.com/ajmarsh/context-collapse-server/internal/services/session"
	"github.com/ajmarsh/context-collapse-server/internal/storage/memory"
	"github.com/ajmarsh/context-collapse-server/internal/testutil"
)

type JanitorSuite struct {
	suite.Suite
	storage  *memory.Storage
	clock    *mocks.MockClock
	sessions *session.Service
	janitor  *Janitor
	ctx      context.Context
}

func TestJanitorSuite(t *testing.T) {
	suite.Run(t, new(JanitorSuite))
}

func (s *JanitorSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.sessions = session.New(s.storage, s.clock, mocks.NewMockRandom(), session.DefaultConfig(), testutil.NopLogger())
	s.janitor = New(s.storage, s.sessions, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *JanitorSuite) saveSessionCheckedInAt(token model.SessionToken, at time.Time) {
	err := s.storage.SaveSession(s.ctx, &model.GameSession{
		Token:                token,
		InitialTimestamp:     at.Unix(),
		LastCheckInTimestamp: at.Unix(),
		CreatedAt:            at,
		UpdatedAt:            at,
	})
	s.Require().NoError(err)
}

func (s *JanitorSuite) TestSweepDeletesOnlyStaleSessions() {
	now := s.clock.CurrentTime
	s.saveSessionCheckedInAt("stale", now.Add(-25*time.Hour))
	s.saveSessionCheckedInAt("fresh", now.Add(-time.Minute))

	s.janitor.Sweep(s.ctx)

	_, err := s.storage.GetSession(s.ctx, "stale")
	s.ErrorIs(err, model.ErrSessionNotFound)

	_, err = s.storage.GetSession(s.ctx, "fresh")
	s.NoError(err)
}

func (s *JanitorSuite) TestSweepIsIdempotent() {
	now := s.clock.CurrentTime
	s.saveSessionCheckedInAt("stale", now.Add(-48*time.Hour))

	s.janitor.Sweep(s.ctx)
	s.janitor.Sweep(s.ctx)

	_, err := s.storage.GetSession(s.ctx, "stale")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *JanitorSuite) TestSweepWithNothingStale() {
	now := s.clock.CurrentTime
	s.saveSessionCheckedInAt("fresh", now)

	s.janitor.Sweep(s.ctx)

	_, err := s.storage.GetSession(s.ctx, "fresh")
	s.NoError(err)
}

func (s *JanitorSuite) TestStartStop() {
	s.janitor.Start(s.ctx)
	s.janitor.Stop()
	// Stop is safe to call again
	s.janitor.Stop()
}

func (s *JanitorSuite) TestStartStopsOnContextCancel() {
	ctx, cancel := context.WithCancel(s.ctx)
	s.janitor.Start(ctx)
	cancel()

	select {
	case <-s.janitor.done:
	case <-time.After(time.Second):
		s.Fail("janitor did not stop on context cancel")
	}
}
