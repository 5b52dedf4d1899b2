package cmd_test

import (
	"testing"
	"time"

	"marketplace/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("DB_HOST", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 25, cfg.DB.MaxOpenConns)
	assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, "secret", cfg.JWTSecret)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("SEED_PATH", "/etc/marketplace/seed.yml")

	cfg, err := cmd.LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 50, cfg.DB.MaxOpenConns)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "/etc/marketplace/seed.yml", cfg.SeedPath)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")

	_, err := cmd.LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DB_MAX_OPEN_CONNS")
}
