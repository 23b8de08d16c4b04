package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config application configuration
type Config struct {
	// Telegram. A missing token is reported per callback, not at startup.
	BotToken          string        `env:"BOT_TOKEN"`
	TelegramServerURL string        `env:"TELEGRAM_API_URL"` // e.g., a local Bot API server
	TelegramTimeout   time.Duration `env:"TELEGRAM_TIMEOUT" envDefault:"10s"`
	StaffChatID       int64         `env:"STAFF_CHAT_ID"` // follow-up target, 0 = originating chat

	// Webhook
	HTTPAddr      string `env:"HTTP_ADDR" envDefault:":8080"`
	WebhookPath   string `env:"WEBHOOK_PATH" envDefault:"/api/telegram-webhook"`
	WebhookURL    string `env:"WEBHOOK_URL"` // registered with setWebhook when set
	WebhookSecret string `env:"WEBHOOK_SECRET"`

	// Timestamps on edited messages
	Timezone string `env:"TIMEZONE" envDefault:"Europe/Kiev"`

	// Storage
	DatabasePath string `env:"DATABASE_PATH" envDefault:"./data/orderbot.db"`

	// Translation files served under /i18n/
	I18nDir string `env:"I18N_DIR" envDefault:"./static/i18n"`

	// Logging
	LogLevel          string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat         string `env:"LOG_FORMAT" envDefault:"text"` // "json" or "text"
	SentryDSN         string `env:"SENTRY_DSN"`
	SentryEnvironment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
}

// HasBotToken returns true if the bot credential is configured
func (c *Config) HasBotToken() bool {
	return c.BotToken != ""
}

// Location returns the timezone used for message timestamps
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	if cfg.WebhookPath == "" || cfg.WebhookPath[0] != '/' {
		return nil, fmt.Errorf("WEBHOOK_PATH must start with '/', got %q", cfg.WebhookPath)
	}

	return cfg, nil
}
