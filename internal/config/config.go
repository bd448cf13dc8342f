// Package config loads server settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr    string
	DBPath      string
	JWTSecret   string
	TokenTTL    time.Duration
	LogLevel    string
	LogFormat   string // text|json
	Env         string // dev|prod
	SentryDSN   string
	GeminiKey   string
	GeminiModel string

	// SeedDemoData loads the demo dataset into an empty database.
	SeedDemoData bool

	// StrictLogin requires students to give their password.
	StrictLogin bool
}

// devSecret signs tokens when JWT_SECRET is unset outside production.
const devSecret = "portal-dev-secret-change-me"

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	ttl, err := time.ParseDuration(getenv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	seed, err := getbool("SEED_DEMO_DATA", true)
	if err != nil {
		return nil, err
	}
	strict, err := getbool("PORTAL_STRICT_LOGIN", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":8080"),
		DBPath:       getenv("DB_PATH", "./data/portal.db"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		TokenTTL:     ttl,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "text"),
		Env:          getenv("ENV", "dev"),
		SentryDSN:    os.Getenv("SENTRY_DSN"),
		GeminiKey:    getenv("GEMINI_API_KEY", os.Getenv("API_KEY")),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-2.5-flash"),
		SeedDemoData: seed,
		StrictLogin:  strict,
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "prod" {
			return nil, errors.New("JWT_SECRET is required in prod")
		}
		cfg.JWTSecret = devSecret
	}
	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}
