package cli

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/ajmarsh/context-collapse-server/internal/api"
	"github.com/ajmarsh/context-collapse-server/internal/factory"
	"github.com/ajmarsh/context-collapse-server/internal/testutil"
)

type ClientSuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
	client *Client
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.app = factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		SessionService: s.app.SessionService,
		ScoresService:  s.app.ScoresService,
		ContactService: s.app.ContactService,
		StatsService:   s.app.StatsService,
	})
	s.server = httptest.NewServer(router)
	s.client = NewClient(s.server.URL)
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientSuite) TestGetDecodesResponse() {
	var token TokenResult
	err := s.client.Get("/context-collapse-token", &token)
	s.Require().NoError(err)
	s.Len(token.Token, 64)
}

func (s *ClientSuite) TestPostRoundTrip() {
	var token TokenResult
	s.Require().NoError(s.client.Get("/context-collapse-token", &token))

	err := s.client.Post("/context-collapse-checkin", map[string]string{"token": token.Token}, nil)
	s.NoError(err)
}

func (s *ClientSuite) TestErrorResponsesSurfaceCodeAndMessage() {
	err := s.client.Post("/context-collapse-checkin", map[string]string{"token": "nope"}, nil)
	s.Require().Error(err)
	s.Contains(err.Error(), "SESSION_NOT_FOUND")
}

func (s *ClientSuite) TestFullSubmitFlow() {
	var token TokenResult
	s.Require().NoError(s.client.Get("/context-collapse-token", &token))

	s.app.MockClock.Advance(600 * time.Second)
	s.Require().NoError(s.client.Post("/context-collapse-checkin",
		map[string]string{"token": token.Token}, nil))

	var row ScoreRow
	err := s.client.Post("/leaderboard", map[string]any{
		"name":       "Alice",
		"score":      100,
		"difficulty": "easy",
		"scoreToken": "st1",
		"token":      token.Token,
	}, &row)
	s.Require().NoError(err)
	s.Equal(100, row.Score)

	var board LeaderboardResult
	s.Require().NoError(s.client.Get("/leaderboard", &board))
	s.Require().Len(board.Easy, 1)
	s.Equal("Alice", board.Easy[0].Name)
}

func (s *ClientSuite) TestBaseURLTrailingSlashTrimmed() {
	client := NewClient(s.server.URL + "/")
	var token TokenResult
	s.NoError(client.Get("/context-collapse-token", &token))
}

func (s *ClientSuite) TestContactCommandRelaysMail() {
	root := NewRootCmd()
	root.SetArgs([]string{
		"--server", s.server.URL,
		"--token-file", filepath.Join(s.T().TempDir(), "token"),
		"contact",
		"--email", "player@example.com",
		"--name", "Alice",
		"--message", "love the game",
	})
	s.Require().NoError(root.Execute())

	s.Require().Len(s.app.MockMailer.Sent, 1)
	s.Contains(s.app.MockMailer.Sent[0].Body, "love the game")
}

func (s *ClientSuite) TestConfigTokenPersistence() {
	cfg := &Config{TokenFile: filepath.Join(s.T().TempDir(), "token")}

	s.Require().NoError(cfg.SaveToken("abc123"))

	loaded := &Config{TokenFile: cfg.TokenFile}
	s.Require().NoError(loaded.LoadToken())
	s.Equal("abc123", loaded.Token)
}

func (s *ClientSuite) TestConfigLoadTokenMissingFileIsFine() {
	cfg := &Config{TokenFile: filepath.Join(s.T().TempDir(), "absent")}
	s.NoError(cfg.LoadToken())
	s.Empty(cfg.Token)
}
