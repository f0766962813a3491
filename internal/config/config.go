package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the process configuration, read from the environment.
// A .env file in the working directory is honored when present.
type Config struct {
	// Server
	Port int

	// Storage: "memory" or "redis"
	StorageType string
	RedisURL    string

	// Anti-cheat policy
	SessionStaleAfter time.Duration
	CheckInWindow     time.Duration
	JanitorInterval   time.Duration

	// YouTube stats proxy
	YouTubeAPIKey    string
	YouTubeChannelID string

	// Contact form
	ContactRecipient string
	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	SMTPFrom         string
}

// Load reads configuration from the environment
func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		Port:              getEnvInt("PORT", 5000),
		StorageType:       getEnv("STORAGE_TYPE", "memory"),
		RedisURL:          getEnv("REDIS_URL", ""),
		SessionStaleAfter: time.Duration(getEnvInt("SESSION_STALE_AFTER_SECONDS", 86400)) * time.Second,
		CheckInWindow:     time.Duration(getEnvInt("CHECKIN_WINDOW_SECONDS", 45)) * time.Second,
		JanitorInterval:   time.Duration(getEnvInt("JANITOR_INTERVAL_SECONDS", 600)) * time.Second,
		YouTubeAPIKey:     getEnv("YOUTUBE_API_KEY", ""),
		YouTubeChannelID:  getEnv("YOUTUBE_CHANNEL_ID", ""),
		ContactRecipient:  getEnv("CONTACT_RECIPIENT", ""),
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		SMTPUser:          getEnv("SMTP_USER", ""),
		SMTPPass:          getEnv("SMTP_PASS", ""),
		SMTPFrom:          getEnv("SMTP_FROM", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
