package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config is read once at startup and injected into the pieces that need
// it. The AI key has no default: without it the service cannot do its job,
// so startup fails instead of limping along.
type Config struct {
	Port          string
	MongoURI      string
	MongoDatabase string
	JWTSecret     string
	AIAPIKey      string
	AIModel       string
	AITemperature float64
	AIMaxTokens   int
}

func Load() (Config, error) {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DB", "journey"),
		JWTSecret:     getEnv("JWT_SECRET", ""),
		AIAPIKey:      os.Getenv("AIML_API_KEY"),
		AIModel:       getEnv("AI_MODEL", "gpt-4"),
		AITemperature: getEnvFloat("AI_TEMPERATURE", 0.7),
		AIMaxTokens:   getEnvInt("AI_MAX_TOKENS", 1500),
	}
	if cfg.AIAPIKey == "" {
		return Config{}, fmt.Errorf("AIML_API_KEY environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
