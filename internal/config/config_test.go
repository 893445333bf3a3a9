package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedKeys = []string{
	"BOT_TOKEN",
	"ADMIN_ID",
	"ACTIVITY_LOG_CAPACITY",
	"ACTIVITY_RETENTION_DAYS",
	"METRICS_ADDR",
	"COMPLETION_API_KEY",
	"COMPLETION_URL",
	"COMPLETION_MODEL",
	"COMPLETION_TEMPERATURE",
	"COMPLETION_TIMEOUT",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
	"DB_USER",
	"DB_PASSWORD",
}

// clearEnv unsets all config keys and restores them after the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range managedKeys {
		original, had := os.LookupEnv(key)
		os.Unsetenv(key)
		key := key
		t.Cleanup(func() {
			if had {
				os.Setenv(key, original)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, cfg.DSN())
	assert.True(t, cfg.DatabaseEnabled())
}

func TestLoad_MissingBotToken(t *testing.T) {
	clearEnv(t)
	os.Setenv("COMPLETION_API_KEY", "key")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "BOT_TOKEN")
}

func TestLoad_MissingCompletionKey(t *testing.T) {
	clearEnv(t)
	os.Setenv("BOT_TOKEN", "test_token")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "COMPLETION_API_KEY")
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("COMPLETION_API_KEY", "test_key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, int64(7092312411), cfg.AdminID)
	assert.Equal(t, 100, cfg.ActivityCapacity)
	assert.Equal(t, 60, cfg.ActivityRetentionDays)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, "test_key", cfg.Completion.APIKey)
	assert.Equal(t, "https://api.groq.com/openai/v1/chat/completions", cfg.Completion.URL)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.Completion.Model)
	assert.InDelta(t, 0.2, cfg.Completion.Temperature, 1e-9)
	assert.Equal(t, 60*time.Second, cfg.Completion.Timeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "medina", cfg.Database.Name)
	assert.Equal(t, "medina", cfg.Database.User)
	assert.False(t, cfg.DatabaseEnabled())
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("COMPLETION_API_KEY", "test_key")
	os.Setenv("ADMIN_ID", "42")
	os.Setenv("COMPLETION_TIMEOUT", "5s")
	os.Setenv("DB_PASSWORD", "secret")
	os.Setenv("DB_HOST", "db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.AdminID)
	assert.Equal(t, 5*time.Second, cfg.Completion.Timeout)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.True(t, cfg.DatabaseEnabled())
}

func TestLoad_InvalidAdminID(t *testing.T) {
	clearEnv(t)
	os.Setenv("BOT_TOKEN", "test_token")
	os.Setenv("COMPLETION_API_KEY", "test_key")
	os.Setenv("ADMIN_ID", "not-a-number")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
}
