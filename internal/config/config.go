package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the binaries read from the environment.
type Config struct {
	AnalysisURL    string
	Port           string
	RequestTimeout time.Duration
	LibraryPath    string
}

// Load reads configuration from a .env file (if present) and the process
// environment, filling in defaults for anything unset.
func Load() (*Config, error) {
	godotenv.Load()

	return &Config{
		AnalysisURL:    getEnvOrDefault("SOUNDFACTS_API_URL", "http://localhost:8090"),
		Port:           getEnvOrDefault("PORT", "8080"),
		RequestTimeout: getDurationSeconds("SOUNDFACTS_TIMEOUT_SECONDS", 30*time.Second),
		LibraryPath:    os.Getenv("SOUNDFACTS_LIBRARY"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationSeconds(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
