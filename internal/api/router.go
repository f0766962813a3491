package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ajmarsh/context-collapse-server/internal/api/handler"
	apimiddleware "github.com/ajmarsh/context-collapse-server/internal/api/middleware"
	"github.com/ajmarsh/context-collapse-server/internal/middleware"
	"github.com/ajmarsh/context-collapse-server/internal/services/contact"
	"github.com/ajmarsh/context-collapse-server/internal/services/scores"
	"github.com/ajmarsh/context-collapse-server/internal/services/session"
	"github.com/ajmarsh/context-collapse-server/internal/services/stats"
)

// MaxBodyBytes caps request body size, matching the game client's payloads
const MaxBodyBytes = 80 << 10

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	SessionService *session.Service
	ScoresService  *scores.Service
	ContactService *contact.Service
	StatsService   *stats.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.ScoresService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionService)
	contactHandler := handler.NewContactHandler(cfg.ContactService)
	statsHandler := handler.NewStatsHandler(cfg.StatsService)

	// Common middleware
	r.Use(apimiddleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(apimiddleware.BodyLimit(MaxBodyBytes))

	// Leaderboard
	r.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/leaderboard", leaderboardHandler.Submit).Methods(http.MethodPost)

	// Anti-cheat session lifecycle
	r.HandleFunc("/context-collapse-token", sessionHandler.IssueToken).Methods(http.MethodGet)
	r.HandleFunc("/context-collapse-checkin", sessionHandler.CheckIn).Methods(http.MethodPost)

	// External collaborators
	r.HandleFunc("/youtubestats/andy/subscribers", statsHandler.Subscribers).Methods(http.MethodGet)
	r.HandleFunc("/contact", contactHandler.Submit).Methods(http.MethodPost)

	// Easter egg
	r.HandleFunc("/teapotcoffee", handler.Teapot).Methods(http.MethodGet)

	// Liveness
	r.HandleFunc("/", handler.Liveness).Methods(http.MethodGet)

	// CORS wraps the router itself so preflight requests get answered on
	// every path, including ones mux would 405
	return middleware.CORS()(r)
}
