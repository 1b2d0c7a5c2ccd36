package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the application configuration, read from environment
// variables. The same binary serves every deployment environment; the
// cookie and CORS posture is selected by Environment instead of forking
// the server per environment.
type Config struct {
	Port           string
	DatabaseDSN    string
	JWTSecret      string
	Environment    string // "development" or "production"
	AllowedOrigins []string
}

// Load reads the configuration from the environment, falling back to
// local-development defaults where a value is missing.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "5000"),
		DatabaseDSN:    getEnv("DB_DSN", "host=localhost user=postgres password=password dbname=jobnest port=5432 sslmode=disable"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Environment:    getEnv("APP_ENV", "development"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
	}
}

// Validate checks the values a running server cannot do without. The token
// signer is unusable without a secret, so that is a startup failure rather
// than a per-request error.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if c.Environment != "development" && c.Environment != "production" {
		return fmt.Errorf("APP_ENV must be \"development\" or \"production\", got %q", c.Environment)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
