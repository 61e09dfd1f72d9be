package config

import (
	"os"
	"strconv"
	"time"
)

// Environment variables read by FromEnv.
const (
	EnvAPIKey          = "GEMINI_API_KEY"
	EnvProvider        = "LLM_PROVIDER"
	EnvModel           = "GEMINI_MODEL"
	EnvTier            = "GEMINI_TIER"
	EnvPort            = "PORT"
	EnvLooseValidation = "PATHFINDER_LOOSE_VALIDATION"
	EnvAllowOrigin     = "CORS_ALLOW_ORIGIN"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// FromEnv builds a Config from environment variables, with built-in defaults
// for anything unset.
func FromEnv() Config {
	return Config{
		APIKey:          getEnvString(EnvAPIKey, ""),
		Provider:        getEnvString(EnvProvider, ""),
		Model:           getEnvString(EnvModel, ""),
		Tier:            getEnvString(EnvTier, ""),
		Port:            getEnvInt(EnvPort, DefaultPort),
		LooseValidation: getEnvBool(EnvLooseValidation, false),
		AllowOrigin:     getEnvString(EnvAllowOrigin, "*"),
		ShutdownTimeout: getEnvString(EnvShutdownTimeout, "30s"),
	}
}

// ShutdownDuration returns the graceful shutdown budget, defaulting to 30s.
func (c *Config) ShutdownDuration() time.Duration {
	if d, err := parseDuration(c.ShutdownTimeout); err == nil && d > 0 {
		return d
	}
	return 30 * time.Second
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
