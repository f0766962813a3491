package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ajmarsh/context-collapse-server/internal/api"
	"github.com/ajmarsh/context-collapse-server/internal/config"
	"github.com/ajmarsh/context-collapse-server/internal/factory"
	"github.com/ajmarsh/context-collapse-server/internal/services/contact"
	"github.com/ajmarsh/context-collapse-server/internal/services/janitor"
	"github.com/ajmarsh/context-collapse-server/internal/services/scores"
	"github.com/ajmarsh/context-collapse-server/internal/services/session"
	"github.com/ajmarsh/context-collapse-server/internal/services/stats"
	redisstorage "github.com/ajmarsh/context-collapse-server/internal/storage/redis"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	// Build factory config from process configuration
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
		SessionConfig: session.Config{
			StaleAfter: cfg.SessionStaleAfter,
		},
		ScoresConfig: scores.Config{
			CheckInWindow: cfg.CheckInWindow,
		},
		JanitorConfig: janitor.Config{
			Interval: cfg.JanitorInterval,
		},
		ContactConfig: contact.Config{
			Recipient: cfg.ContactRecipient,
		},
		StatsConfig: stats.Config{
			APIKey:    cfg.YouTubeAPIKey,
			ChannelID: cfg.YouTubeChannelID,
		},
		SMTPConfig: contact.SMTPConfig{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			From: cfg.SMTPFrom,
		},
	}

	if factoryCfg.StorageType == factory.StorageTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		SessionService: app.SessionService,
		ScoresService:  app.ScoresService,
		ContactService: app.ContactService,
		StatsService:   app.StatsService,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start the stale-session sweep
	app.Janitor.Start(ctx)
	defer app.Janitor.Stop()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
