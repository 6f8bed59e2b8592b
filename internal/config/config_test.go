package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "test-host")
	t.Setenv("DB_MAX_OPEN_CONNS", "40")
	t.Setenv("MINIO_ENDPOINT", "minio:9000")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MATCH_MAX_LIMIT", "500")
	t.Setenv("MATCH_DEFAULT_LIMIT", "100")

	cfg := Load()

	assert.Equal(t, "test-host", cfg.Database.Host)
	assert.Equal(t, 40, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.MinIO.UseSSL)
	assert.True(t, cfg.MinIO.Enabled())
	assert.Equal(t, 500, cfg.Matching.MaxLimit)
	assert.Equal(t, 100, cfg.Matching.DefaultLimit)
	assert.Equal(t, "", cfg.Redis.Addr)
	assert.Equal(t, "freight_search.created", cfg.AMQP.Queue)
}

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, 200, cfg.Matching.DefaultLimit)
	assert.Equal(t, 1000, cfg.Matching.MaxLimit)
	assert.Equal(t, 15*time.Minute, cfg.Matching.ExportURLExpiry)
	assert.Equal(t, 2*time.Second, cfg.AMQP.DialTimeout)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		in    AppConfig
		check func(t *testing.T, c AppConfig)
	}{
		{
			name: "default limit above max is clamped",
			in:   AppConfig{Matching: MatchingConfig{DefaultLimit: 5000, MaxLimit: 1000, ExportPageSize: 10}},
			check: func(t *testing.T, c AppConfig) {
				assert.Equal(t, 1000, c.Matching.DefaultLimit)
				assert.Equal(t, 10, c.Matching.ExportPageSize)
			},
		},
		{
			name: "non-positive max falls back",
			in:   AppConfig{Matching: MatchingConfig{DefaultLimit: 0, MaxLimit: 0}},
			check: func(t *testing.T, c AppConfig) {
				assert.Equal(t, 1000, c.Matching.MaxLimit)
				assert.Equal(t, 1000, c.Matching.DefaultLimit)
				assert.Equal(t, 1000, c.Matching.ExportPageSize)
			},
		},
		{
			name: "rate limit ttl covers several refills",
			in:   AppConfig{Matching: MatchingConfig{MaxLimit: 10, DefaultLimit: 5}, RateLimit: RateLimitConfig{RefillInterval: time.Minute, TTL: time.Second}},
			check: func(t *testing.T, c AppConfig) {
				assert.Equal(t, 5*time.Minute, c.RateLimit.TTL)
				assert.Equal(t, 1, c.RateLimit.Capacity)
				assert.Equal(t, 1, c.RateLimit.RefillTokens)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.in
			c.normalize()
			tt.check(t, c)
		})
	}
}

func TestLocation(t *testing.T) {
	c := &AppConfig{Timezone: "Local"}
	assert.Equal(t, time.Local, c.Location())

	c.Timezone = "Not/AZone"
	assert.Equal(t, time.UTC, c.Location())
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvBool(t *testing.T) {
	key := "TEST_BOOL_VAR"

	os.Setenv(key, "true")
	assert.True(t, getEnvBool(key, false))

	os.Setenv(key, "false")
	assert.False(t, getEnvBool(key, true))

	os.Setenv(key, "invalid")
	assert.True(t, getEnvBool(key, true))

	os.Unsetenv(key)
	assert.True(t, getEnvBool(key, true))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_DURATION_VAR"

	t.Setenv(key, "90s")
	assert.Equal(t, 90*time.Second, getEnvDuration(key, time.Second))

	t.Setenv(key, "soon")
	assert.Equal(t, time.Second, getEnvDuration(key, time.Second))
}
