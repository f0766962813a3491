package handler

import (
	"net/http"

	"github.com/ajmarsh/context-collapse-server/internal/api/response"
	"github.com/ajmarsh/context-collapse-server/internal/services/stats"
)

// StatsHandler proxies third-party channel statistics
type StatsHandler struct {
	statsService *stats.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *stats.Service) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Subscribers handles GET /youtubestats/andy/subscribers
func (h *StatsHandler) Subscribers(w http.ResponseWriter, r *http.Request) {
	channelStats, err := h.statsService.ChannelStats(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, channelStats)
}
