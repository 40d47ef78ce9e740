package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the exchange server.
type Config struct {
	Port      string        // listen address, e.g. ":8080"
	DSN       string        // SQLite data source name
	JWTSecret string        // HMAC secret for access tokens
	TokenTTL  time.Duration // access token validity window
}

// Load reads configuration from the environment, with a best-effort .env file.
func Load() *Config {
	// Missing .env is fine; real deployments set variables directly.
	_ = godotenv.Load()

	return &Config{
		Port:      fmt.Sprintf(":%s", getEnv("PORT", "8080")),
		DSN:       getEnv("DB_DSN", "file:exchange.db?_foreign_keys=on"),
		JWTSecret: getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:  getDuration("TOKEN_TTL", 24*time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
