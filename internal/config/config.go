package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the simulator's settings
type Config struct {
	// InputPath is the recorded command log to replay
	InputPath string

	// OutputPath is where the output array is written
	OutputPath string

	// LogLevel is a zerolog level name (debug, info, warn, error)
	LogLevel string
}

// Load reads configuration from the environment, with .env as a
// non-fatal fallback
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		InputPath:  os.Getenv("INPUT_PATH"),
		OutputPath: getEnvDefault("OUTPUT_PATH", "output.json"),
		LogLevel:   getEnvDefault("LOG_LEVEL", "info"),
	}

	if cfg.InputPath == "" {
		return nil, fmt.Errorf("INPUT_PATH is required")
	}

	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
