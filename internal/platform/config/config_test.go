package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range overrides {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newTestViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, "100-M", cfg.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 24*time.Hour, cfg.IdempotencyTTL)
	assert.Equal(t, 2*time.Minute, cfg.IdempotencyPendingTTL)
	assert.Empty(t, cfg.RedisURL)
	assert.Zero(t, cfg.StatementDefaultDays)
	assert.False(t, cfg.IsProduction)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newTestViper(map[string]any{
		"PORT":                   "9090",
		"IS_PRODUCTION":          "true",
		"CORS_ALLOWED_ORIGINS":   "https://a.example, https://b.example ,",
		"REDIS_URL":              "redis://localhost:6379/0",
		"IDEMPOTENCY_TTL":        "90m",
		"STATEMENT_DEFAULT_DAYS": "30",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	assert.Equal(t, 90*time.Minute, cfg.IdempotencyTTL)
	assert.Equal(t, 30, cfg.StatementDefaultDays)
}

func TestFromViper_Invalid(t *testing.T) {
	_, err := fromViper(newTestViper(map[string]any{"IDEMPOTENCY_TTL": "soon"}))
	assert.ErrorContains(t, err, "IDEMPOTENCY_TTL")

	_, err = fromViper(newTestViper(map[string]any{"IDEMPOTENCY_TTL": "1m", "IDEMPOTENCY_PENDING_TTL": "5m"}))
	assert.ErrorContains(t, err, "IDEMPOTENCY_PENDING_TTL")

	_, err = fromViper(newTestViper(map[string]any{"STATEMENT_DEFAULT_DAYS": -1}))
	assert.ErrorContains(t, err, "STATEMENT_DEFAULT_DAYS")
}
