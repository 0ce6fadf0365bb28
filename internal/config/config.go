package config

import (
	"os"   // For environment variables
	"time" // For the AI call timeout

	"github.com/joho/godotenv" // For loading .env files
)

// Config holds the application configuration
type Config struct {
	AppPort   string        // Application port
	APIKey    string        // Text-generation API key, optional
	AIModel   string        // Text-generation model name
	AITimeout time.Duration // Upper bound for one text-generation call
	IsProd    bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load()                                                // Load .env file if present
	timeout := parseDuration(os.Getenv("AI_TIMEOUT"), 20*time.Second) // AI call timeout
	return &Config{
		AppPort:   getenv("APP_PORT", "8080"),     // Application port
		APIKey:    os.Getenv("API_KEY"),           // Missing key degrades summaries to fallback text
		AIModel:   os.Getenv("AI_MODEL"),          // Empty picks the gateway default
		AITimeout: timeout,                        // Upper bound for one AI call
		IsProd:    os.Getenv("IS_PROD") == "true", // Is production environment
	}
}

// getenv returns the variable or def when it is unset or empty
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// parseDuration parses a Go duration, falling back to def on empty or invalid input
func parseDuration(raw string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
