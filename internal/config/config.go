package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN"`
	// AdminID is the single privileged Telegram user id
	AdminID int64 `envconfig:"ADMIN_ID" default:"7092312411"`

	ActivityCapacity      int    `envconfig:"ACTIVITY_LOG_CAPACITY" default:"100"`
	ActivityRetentionDays int    `envconfig:"ACTIVITY_RETENTION_DAYS" default:"60"`
	MetricsAddr           string `envconfig:"METRICS_ADDR"`

	Completion CompletionConfig `envconfig:"COMPLETION"`
	Database   DatabaseConfig   `envconfig:"DB"`
}

// CompletionConfig holds text-completion service settings
type CompletionConfig struct {
	APIKey      string        `split_words:"true"`
	URL         string        `default:"https://api.groq.com/openai/v1/chat/completions"`
	Model       string        `default:"llama-3.3-70b-versatile"`
	Temperature float64       `default:"0.2"`
	Timeout     time.Duration `default:"60s"`
}

// DatabaseConfig holds database connection settings.
// The activity sink is disabled when Password is empty.
type DatabaseConfig struct {
	Host     string `default:"localhost"`
	Port     string `default:"5432"`
	Name     string `default:"medina"`
	User     string `default:"medina"`
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Completion.APIKey == "" {
		return nil, fmt.Errorf("COMPLETION_API_KEY is required")
	}
	if cfg.Completion.Timeout <= 0 {
		return nil, fmt.Errorf("COMPLETION_TIMEOUT must be > 0")
	}
	if cfg.ActivityRetentionDays <= 0 {
		return nil, fmt.Errorf("ACTIVITY_RETENTION_DAYS must be > 0")
	}

	return &cfg, nil
}

// DatabaseEnabled reports whether the activity sink should be used
func (c *Config) DatabaseEnabled() bool {
	return c.Database.Password != ""
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
