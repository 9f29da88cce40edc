// Package config centralises environment-driven configuration.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config captures runtime configuration for the server.
type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	JWTIssuer      string
	AllowedOrigins []string
	Env            string
}

// Load reads environment variables into Config. DATABASE_DSN and JWT_SECRET
// have no safe defaults and must be set; the process refuses to start
// without them.
func Load() (Config, error) {
	var missing []string
	for _, key := range []string{"DATABASE_DSN", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg := Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getEnv("JWT_ISSUER", ""),
		Env:         getEnv("ENV", "development"),
	}
	cfg.AllowedOrigins = splitAndTrim(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173"))
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
