package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/ajmarsh/context-collapse-server/internal/dependencies/clock"
	"github.com/ajmarsh/context-collapse-server/internal/dependencies/random"
	"github.com/ajmarsh/context-collapse-server/internal/services/contact"
	"github.com/ajmarsh/context-collapse-server/internal/services/janitor"
	"github.com/ajmarsh/context-collapse-server/internal/services/scores"
	"github.com/ajmarsh/context-collapse-server/internal/services/session"
	"github.com/ajmarsh/context-collapse-server/internal/services/stats"
	"github.com/ajmarsh/context-collapse-server/internal/storage"
	"github.com/ajmarsh/context-collapse-server/internal/storage/memory"
	redisstorage "github.com/ajmarsh/context-collapse-server/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	SessionService *session.Service
	ScoresService  *scores.Service
	Janitor        *janitor.Janitor
	ContactService *contact.Service
	StatsService   *stats.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config

	// Service configs; zero values fall back to each service's defaults
	SessionConfig session.Config
	ScoresConfig  scores.Config
	JanitorConfig janitor.Config
	ContactConfig contact.Config
	StatsConfig   stats.Config

	// Mailer is the outbound mail transport (optional)
	// If nil, an SMTP mailer built from SMTPConfig is used
	Mailer     contact.Mailer
	SMTPConfig contact.SMTPConfig
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	mailer := cfg.Mailer
	if mailer == nil {
		mailer = contact.NewSMTPMailer(cfg.SMTPConfig)
	}

	return newWithDependencies(store, clock.New(), random.New(), cfg, mailer, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	cfg Config,
	mailer contact.Mailer,
	logger *slog.Logger,
) *App {
	sessionService := session.New(store, clk, rnd, cfg.SessionConfig, logger)
	scoresService := scores.New(store, clk, cfg.ScoresConfig, logger)
	janitorService := janitor.New(store, sessionService, cfg.JanitorConfig, logger)
	contactService := contact.New(mailer, cfg.ContactConfig, logger)
	statsService := stats.New(cfg.StatsConfig, logger)

	return &App{
		Storage:        store,
		Clock:          clk,
		Random:         rnd,
		SessionService: sessionService,
		ScoresService:  scoresService,
		Janitor:        janitorService,
		ContactService: contactService,
		StatsService:   statsService,
	}
}
