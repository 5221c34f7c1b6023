package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	Env string

	// Statistics API
	VLRBaseURL  string
	HTTPTimeout time.Duration
}

// Load loads configuration from environment variables, reading a local
// .env file first when one exists.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:         getEnv("ENV", "development"),
		VLRBaseURL:  getEnv("VLR_BASE_URL", "https://api.vlr.gg/v1"),
		HTTPTimeout: getEnvDuration("HTTP_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
