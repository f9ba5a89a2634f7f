// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"APP_HOST", "APP_PORT", "APP_ENV",
	"DATABASE_URL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"POSTGRES_MAX_CONNS",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	"CACHE_TTL", "RATE_LIMIT",
}

// clearEnv blanks every variable Load reads. envOrDefault treats an empty
// value the same as an unset one, and t.Setenv restores the originals.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "newsboard", cfg.DBUser)
	assert.Equal(t, "changeme", cfg.DBPassword)
	assert.Equal(t, "newsboard", cfg.DBName)
	assert.Equal(t, 25, cfg.DBMaxConns)
	assert.Equal(t, "localhost", cfg.ValkeyHost)
	assert.Equal(t, "6379", cfg.ValkeyPort)
	assert.Empty(t, cfg.ValkeyPassword)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 300, cfg.RateLimit)
	assert.True(t, cfg.IsDev())
	assert.True(t, cfg.CacheEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("APP_ENV", "testing")
	t.Setenv("POSTGRES_MAX_CONNS", "4")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("RATE_LIMIT", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
	assert.False(t, cfg.IsDev())
	assert.Equal(t, 4, cfg.DBMaxConns)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Zero(t, cfg.RateLimit)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"POSTGRES_MAX_CONNS", "many"},
		{"POSTGRES_MAX_CONNS", "0"},
		{"RATE_LIMIT", "-1"},
		{"RATE_LIMIT", "fast"},
		{"CACHE_TTL", "forever"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_CacheDisabled(t *testing.T) {
	clearEnv(t)
	t.Setenv("CACHE_TTL", "0s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.CacheEnabled())
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_PASSWORD")

	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
}

func TestLoad_ProductionWithDatabaseURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/news")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/news", cfg.DSN())
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBUser:     "alice",
		DBPassword: "pw",
		DBHost:     "db.local",
		DBPort:     "5433",
		DBName:     "news",
	}
	assert.Equal(t, "postgres://alice:pw@db.local:5433/news?sslmode=disable", cfg.DSN())
}
