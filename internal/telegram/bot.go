package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
)

// Client is the outbound Telegram Bot API client used by the callback router
type Client struct {
	bot    *bot.Bot
	logger *slog.Logger
}

// ClientConfig configuration for the Bot API client
type ClientConfig struct {
	Token     string
	ServerURL string // optional, defaults to https://api.telegram.org
}

// NewClient creates a new Bot API client. No request is made until a method is called.
func NewClient(cfg ClientConfig, logger *slog.Logger) (*Client, error) {
	opts := []bot.Option{
		bot.WithSkipGetMe(),
	}
	if cfg.ServerURL != "" {
		opts = append(opts, bot.WithServerURL(cfg.ServerURL))
	}

	tgBot, err := bot.New(cfg.Token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return &Client{
		bot:    tgBot,
		logger: logger.With("component", "telegram_client"),
	}, nil
}

// SetWebhook registers url as the callback delivery endpoint
func (c *Client) SetWebhook(ctx context.Context, url, secret string) error {
	c.logger.Info("registering webhook", "url", url)
	_, err := c.bot.SetWebhook(ctx, &bot.SetWebhookParams{
		URL:            url,
		AllowedUpdates: []string{"callback_query"},
		SecretToken:    secret,
	})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	return nil
}
