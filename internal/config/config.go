package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// OddsAPIKey enables the Odds API provider; empty disables it
	// without failing the run
	OddsAPIKey string

	// DataDir holds the per-sport projection and results JSON files
	DataDir string

	// RedisURL enables the score snapshot cache when set
	RedisURL string

	// DatabaseURL enables the graded-pick history writer when set
	DatabaseURL string

	// Results API
	HTTPAddr    string
	CORSOrigins []string
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		OddsAPIKey:  getEnv("ODDS_API_KEY", ""),
		DataDir:     getEnv("DATA_DIR", "."),
		RedisURL:    getEnv("REDIS_URL", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		HTTPAddr:    getEnv("HTTP_ADDR", ":8090"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
