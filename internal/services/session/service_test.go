package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajmarsh/context-collapse-server/internal/dependencies/mocks"
	"github.com/ajmarsh/context-collapse-server/internal/model"
	"github.com/ajmarsh/context-collapse-server/internal/storage/memory"
	"github.com/ajmarsh/context-collapse-server/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, mocks.NewMockRandom(), DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

// Issue tests

func (s *ServiceSuite) TestIssueCreatesSession() {
	session, err := s.service.Issue(s.ctx)
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Len(string(session.Token), 2*TokenBytes)
	s.Equal(s.clock.CurrentTime.Unix(), session.InitialTimestamp)
	s.Equal(session.InitialTimestamp, session.LastCheckInTimestamp)
}

func (s *ServiceSuite) TestIssuePersistsSession() {
	session, err := s.service.Issue(s.ctx)
	s.Require().NoError(err)

	stored, err := s.storage.GetSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(session.Token, stored.Token)
}

func (s *ServiceSuite) TestIssueTokensAreUnique() {
	first, err := s.service.Issue(s.ctx)
	s.Require().NoError(err)
	second, err := s.service.Issue(s.ctx)
	s.Require().NoError(err)

	s.NotEqual(first.Token, second.Token)
}

// CheckIn tests

func (s *ServiceSuite) TestCheckInBumpsLastCheckInOnly() {
	session, _ := s.service.Issue(s.ctx)
	issued := session.InitialTimestamp

	s.clock.Advance(10 * time.Minute)

	err := s.service.CheckIn(s.ctx, session.Token)
	s.Require().NoError(err)

	stored, err := s.storage.GetSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(issued, stored.InitialTimestamp)
	s.Equal(s.clock.CurrentTime.Unix(), stored.LastCheckInTimestamp)
	s.GreaterOrEqual(stored.LastCheckInTimestamp, stored.InitialTimestamp)
}

func (s *ServiceSuite) TestCheckInUnknownTokenFails() {
	err := s.service.CheckIn(s.ctx, "no-such-token")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *ServiceSuite) TestCheckInUnknownTokenMutatesNothing() {
	session, _ := s.service.Issue(s.ctx)
	before, _ := s.storage.GetSession(s.ctx, session.Token)

	s.clock.Advance(time.Hour)
	_ = s.service.CheckIn(s.ctx, "no-such-token")

	after, err := s.storage.GetSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(before.LastCheckInTimestamp, after.LastCheckInTimestamp)
}

// StaleCutoff tests

func (s *ServiceSuite) TestStaleCutoff() {
	cutoff := s.service.StaleCutoff()
	s.Equal(s.clock.CurrentTime.Add(-24*time.Hour), cutoff)
}

func (s *ServiceSuite) TestStaleCutoffHonorsConfig() {
	svc := New(s.storage, s.clock, mocks.NewMockRandom(), Config{StaleAfter: time.Hour}, testutil.NopLogger())
	s.Equal(s.clock.CurrentTime.Add(-time.Hour), svc.StaleCutoff())
}
