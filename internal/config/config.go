// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime settings for the huecraft service.
type Config struct {
	HTTPPort int

	DatabaseType     string
	DatabaseHost     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	SSLMode          string

	AllowedOrigins []string
	DevMode        bool

	MaxUploadBytes int64
	RateLimitRPS   int
}

// Load reads configuration from the environment, consulting a .env file
// when one is present in the working directory.
func Load() Config {
	// Missing .env is fine, real environments set variables directly.
	_ = godotenv.Load()

	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		DatabaseType:     getEnv("DATABASE_TYPE", "postgres"),
		DatabaseHost:     getEnv("DATABASE_HOST", "localhost"),
		DatabaseUser:     getEnv("DATABASE_USER", "postgres"),
		DatabasePassword: getEnv("DATABASE_PASSWORD", ""),
		DatabaseName:     getEnv("DATABASE_NAME", "huecraft"),
		SSLMode:          getEnv("DATABASE_SSL_MODE", "disable"),

		AllowedOrigins: getEnvSlice("ALLOWED_ORIGINS", []string{"localhost"}),
		DevMode:        getEnvBool("DEV_MODE", false),

		MaxUploadBytes: int64(getEnvInt("MAX_UPLOAD_BYTES", 10<<20)),
		RateLimitRPS:   getEnvInt("RATE_LIMIT_RPS", 20),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return fallback
}
