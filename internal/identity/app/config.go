package app

import (
	"os"
	"strconv"
	"time"

	"github.com/inkomoko/identity/pkg/jwtx"
)

type Config struct {
	Issuer              string        // Issuer claim for session tokens
	TokenSecret         string        // HS256 signing secret; generated at startup when unset
	TokenTTL            time.Duration // Session token lifetime (default: 1h)
	DatabaseFile        string        // Path to SQLite database file (default: ./identity.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "identity"),
		TokenSecret:         os.Getenv("AUTH_TOKEN_SECRET"),
		TokenTTL:            getEnvDurationOrDefault("AUTH_TOKEN_TTL", jwtx.DefaultSessionTTL),
		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "identity.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
