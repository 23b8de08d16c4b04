package telegram

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// ChatInfo identifies the sender of the first message received by the bot
type ChatInfo struct {
	ChatID    int64
	FirstName string
}

// WaitForChatID long-polls the bot until any message arrives and returns its chat.
// Used once when a new owner must be linked to STAFF_CHAT_ID.
func WaitForChatID(ctx context.Context, cfg ClientConfig, logger *slog.Logger) (ChatInfo, error) {
	pollCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	found := make(chan ChatInfo, 1)
	handler := func(ctx context.Context, _ *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		info := ChatInfo{ChatID: update.Message.Chat.ID, FirstName: "Unknown"}
		if update.Message.From != nil && update.Message.From.FirstName != "" {
			info.FirstName = update.Message.From.FirstName
		}
		select {
		case found <- info:
			cancel()
		default:
		}
	}

	opts := []bot.Option{bot.WithDefaultHandler(handler)}
	if cfg.ServerURL != "" {
		opts = append(opts, bot.WithServerURL(cfg.ServerURL))
	}

	tgBot, err := bot.New(cfg.Token, opts...)
	if err != nil {
		return ChatInfo{}, fmt.Errorf("failed to create bot: %w", err)
	}

	// getUpdates is refused while a webhook is registered
	if _, err := tgBot.DeleteWebhook(ctx, &bot.DeleteWebhookParams{}); err != nil {
		return ChatInfo{}, fmt.Errorf("failed to delete webhook: %w", err)
	}
	logger.Warn("webhook removed, restart the server to register it again")

	logger.Info("waiting for a message, ask the new owner to send /start to the bot")
	tgBot.Start(pollCtx)

	select {
	case info := <-found:
		return info, nil
	default:
		return ChatInfo{}, fmt.Errorf("stopped before any message arrived: %w", ctx.Err())
	}
}
