package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ajmarsh/context-collapse-server/internal/model"
)

const defaultBaseURL = "https://www.googleapis.com/youtube/v3"

// Config holds YouTube Data API settings
type Config struct {
	// APIKey is the YouTube Data API key (from process configuration)
	APIKey string
	// ChannelID is the channel whose statistics are proxied
	ChannelID string
	// BaseURL overrides the API base URL (for testing)
	BaseURL string
	// Timeout bounds each upstream request
	Timeout time.Duration
}

// DefaultConfig returns default stats configuration
func DefaultConfig() Config {
	return Config{
		BaseURL: defaultBaseURL,
		Timeout: 10 * time.Second,
	}
}

// ChannelStats is the subscriber payload returned to clients
type ChannelStats struct {
	ChannelID       string `json:"channel_id"`
	SubscriberCount string `json:"subscriber_count"`
	ViewCount       string `json:"view_count"`
	VideoCount      string `json:"video_count"`
}

// channelsResponse mirrors the slice of the YouTube channels.list
// response we care about
type channelsResponse struct {
	Items []struct {
		ID         string `json:"id"`
		Statistics struct {
			SubscriberCount string `json:"subscriberCount"`
			ViewCount       string `json:"viewCount"`
			VideoCount      string `json:"videoCount"`
		} `json:"statistics"`
	} `json:"items"`
}

// Service proxies channel statistics from the YouTube Data API
type Service struct {
	cfg        Config
	logger     *slog.Logger
	httpClient *http.Client
}

// New creates a new stats Service
func New(cfg Config, logger *slog.Logger) *Service {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Service{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// ChannelStats fetches subscriber statistics for the configured channel.
// Upstream failures come back wrapped in model.ErrUpstreamFailure.
func (s *Service) ChannelStats(ctx context.Context) (*ChannelStats, error) {
	q := url.Values{}
	q.Set("part", "statistics")
	q.Set("id", s.cfg.ChannelID)
	q.Set("key", s.cfg.APIKey)

	reqURL := fmt.Sprintf("%s/channels?%s", s.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("youtube stats request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("youtube stats request failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: upstream status %d", model.ErrUpstreamFailure, resp.StatusCode)
	}

	var payload channelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrUpstreamFailure, err)
	}
	if len(payload.Items) == 0 {
		return nil, fmt.Errorf("%w: channel not found", model.ErrUpstreamFailure)
	}

	item := payload.Items[0]
	return &ChannelStats{
		ChannelID:       item.ID,
		SubscriberCount: item.Statistics.SubscriberCount,
		ViewCount:       item.Statistics.ViewCount,
		VideoCount:      item.Statistics.VideoCount,
	}, nil
}
