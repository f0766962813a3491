package janitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ajmarsh/context-collapse-server/internal/services/session"
	"github.com/ajmarsh/context-collapse-server/internal/storage"
)

// Config holds configuration for the janitor
type Config struct {
	// Interval is how often the sweep runs
	Interval time.Duration
}

// DefaultConfig returns default janitor configuration
func DefaultConfig() Config {
	return Config{
		Interval: 10 * time.Minute,
	}
}

// Janitor periodically deletes stale game sessions. It is a pure
// background sweep: idempotent, and never fatal to the process — errors
// are logged and the next tick proceeds regardless.
type Janitor struct {
	storage  storage.Storage
	sessions *session.Service
	logger   *slog.Logger
	interval time.Duration

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New creates a new Janitor
func New(storage storage.Storage, sessions *session.Service, cfg Config, logger *slog.Logger) *Janitor {
	if cfg.Interval == 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	return &Janitor{
		storage:  storage,
		sessions: sessions,
		logger:   logger,
		interval: cfg.Interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the sweep loop. It returns immediately; the loop runs
// until Stop is called or ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	go func() {
		defer close(j.done)

		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				j.Sweep(ctx)
			case <-ctx.Done():
				return
			case <-j.stop:
				return
			}
		}
	}()
}

// Stop halts the sweep loop and waits for it to exit. Safe to call more
// than once.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stop)
	})
	<-j.done
}

// Sweep deletes every session whose last check-in is past the staleness
// cutoff. Exposed so tests can trigger a sweep without the timer.
func (j *Janitor) Sweep(ctx context.Context) {
	deleted, err := j.storage.DeleteStaleSessions(ctx, j.sessions.StaleCutoff())
	if err != nil {
		j.logger.Error("session sweep failed", slog.String("error", err.Error()))
		return
	}
	if deleted > 0 {
		j.logger.Info("swept stale game sessions", slog.Int("deleted", deleted))
	}
}
