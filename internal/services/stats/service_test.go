package stats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/ajmarsh/context-collapse-server/internal/model"
	"github.com/ajmarsh/context-collapse-server/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	ctx context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *ServiceSuite) newService(upstream *httptest.Server) *Service {
	return New(Config{
		APIKey:    "test-key",
		ChannelID: "UC123",
		BaseURL:   upstream.URL,
	}, testutil.NopLogger())
}

func (s *ServiceSuite) TestChannelStats() {
	var gotQuery map[string]string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{
			"part": q.Get("part"),
			"id":   q.Get("id"),
			"key":  q.Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [{
				"id": "UC123",
				"statistics": {
					"subscriberCount": "42000",
					"viewCount": "1000000",
					"videoCount": "310"
				}
			}]
		}`))
	}))
	defer upstream.Close()

	stats, err := s.newService(upstream).ChannelStats(s.ctx)
	s.Require().NoError(err)

	s.Equal("UC123", stats.ChannelID)
	s.Equal("42000", stats.SubscriberCount)
	s.Equal("1000000", stats.ViewCount)
	s.Equal("310", stats.VideoCount)

	s.Equal("statistics", gotQuery["part"])
	s.Equal("UC123", gotQuery["id"])
	s.Equal("test-key", gotQuery["key"])
}

func (s *ServiceSuite) TestChannelStatsUpstreamError() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer upstream.Close()

	_, err := s.newService(upstream).ChannelStats(s.ctx)
	s.ErrorIs(err, model.ErrUpstreamFailure)
}

func (s *ServiceSuite) TestChannelStatsUnknownChannel() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer upstream.Close()

	_, err := s.newService(upstream).ChannelStats(s.ctx)
	s.ErrorIs(err, model.ErrUpstreamFailure)
}

func (s *ServiceSuite) TestChannelStatsMalformedResponse() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer upstream.Close()

	_, err := s.newService(upstream).ChannelStats(s.ctx)
	s.ErrorIs(err, model.ErrUpstreamFailure)
}

func (s *ServiceSuite) TestChannelStatsUnreachableUpstream() {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	_, err := s.newService(upstream).ChannelStats(s.ctx)
	s.ErrorIs(err, model.ErrUpstreamFailure)
}
