package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string

	// Conference feed source. URL takes precedence; Path reads a local
	// YAML file instead, mainly for development.
	ConferencesURL  string
	ConferencesPath string
	FeedCacheTTL    time.Duration

	NotifyCron        string
	NotifyConcurrency int
	NotifyRatePerSec  float64

	LogLevel string
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./deadlines.db"),
		Port:               getEnv("PORT", "3000"),
		ConferencesURL:     getEnv("CONFERENCES_URL", ""),
		ConferencesPath:    getEnv("CONFERENCES_PATH", ""),
		FeedCacheTTL:       getDurationEnv("FEED_CACHE_TTL", 6*time.Hour),
		NotifyCron:         getEnv("NOTIFY_CRON", "0 9 * * *"),
		NotifyConcurrency:  getIntEnv("NOTIFY_CONCURRENCY", 4),
		NotifyRatePerSec:   getFloatEnv("NOTIFY_RATE_PER_SEC", 1),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
