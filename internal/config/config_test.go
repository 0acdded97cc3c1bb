package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "classquest", cfg.ServiceName)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "classquest", cfg.DBName)
	assert.Equal(t, 24*time.Hour, cfg.HonorRecoveryInterval)
	assert.Equal(t, 1, cfg.HonorRecoveryAmount)
	assert.Equal(t, 5*time.Minute, cfg.LeaderboardCacheTTL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API_KEY")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "9090")
	t.Setenv("HONOR_RECOVERY_INTERVAL", "1h")
	t.Setenv("HONOR_RECOVERY_AMOUNT", "5")
	t.Setenv("LEADERBOARD_CACHE_TTL", "30s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Hour, cfg.HonorRecoveryInterval)
	assert.Equal(t, 5, cfg.HonorRecoveryAmount)
	assert.Equal(t, 30*time.Second, cfg.LeaderboardCacheTTL)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestGetDBConnString(t *testing.T) {
	cfg := &Config{
		DBUser:     "u",
		DBPassword: "p",
		DBHost:     "db",
		DBPort:     "5433",
		DBName:     "quest",
	}
	assert.Equal(t, "postgres://u:p@db:5433/quest?sslmode=disable", cfg.GetDBConnString())
}
