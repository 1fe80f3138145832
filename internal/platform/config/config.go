package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL    string
	Port           string
	IsProduction   bool
	EnableDBCheck  bool
	MigrationsPath string

	RateLimit          string
	CORSAllowedOrigins []string

	// RedisURL enables the Redis-backed Idempotency-Key store when set.
	RedisURL       string
	IdempotencyTTL time.Duration

	// IdempotencyPendingTTL bounds how long an unfinished submission holds its key.
	IdempotencyPendingTTL time.Duration

	// StatementDefaultDays bounds a statement without an explicit window to the last N days.
	// Zero means the full history.
	StatementDefaultDays int
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("IDEMPOTENCY_TTL", "24h")
	v.SetDefault("IDEMPOTENCY_PENDING_TTL", "2m")
	v.SetDefault("STATEMENT_DEFAULT_DAYS", 0)
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		DatabaseURL:          v.GetString("PGSQL_URL"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:        v.GetBool("ENABLE_DB_CHECK"),
		MigrationsPath:       v.GetString("MIGRATIONS_PATH"),
		RateLimit:            v.GetString("RATE_LIMIT"),
		RedisURL:             v.GetString("REDIS_URL"),
		StatementDefaultDays: v.GetInt("STATEMENT_DEFAULT_DAYS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	ttlStr := v.GetString("IDEMPOTENCY_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid IDEMPOTENCY_TTL %q", ttlStr)
	}
	cfg.IdempotencyTTL = ttl

	pendingStr := v.GetString("IDEMPOTENCY_PENDING_TTL")
	pending, err := time.ParseDuration(pendingStr)
	if err != nil || pending <= 0 || pending > ttl {
		return nil, fmt.Errorf("invalid IDEMPOTENCY_PENDING_TTL %q: must be positive and at most IDEMPOTENCY_TTL", pendingStr)
	}
	cfg.IdempotencyPendingTTL = pending

	if cfg.StatementDefaultDays < 0 {
		return nil, fmt.Errorf("STATEMENT_DEFAULT_DAYS must not be negative, got %d", cfg.StatementDefaultDays)
	}

	return cfg, nil
}
