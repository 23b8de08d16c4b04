// Command chatid prints the chat ID of the first message sent to the bot.
// The printed value goes into STAFF_CHAT_ID.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mixelka/orderbot/internal/config"
	"github.com/mixelka/orderbot/internal/logging"
	"github.com/mixelka/orderbot/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, logging.Options{}).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(os.Stderr, logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if !cfg.HasBotToken() {
		logger.Error("BOT_TOKEN environment variable not set")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	info, err := telegram.WaitForChatID(ctx, telegram.ClientConfig{
		Token:     cfg.BotToken,
		ServerURL: cfg.TelegramServerURL,
	}, logger)
	if err != nil {
		logger.Error("failed to get chat id", "error", err)
		os.Exit(1)
	}

	logger.Info("message received", "first_name", info.FirstName, "chat_id", info.ChatID)
	fmt.Printf("STAFF_CHAT_ID=%d\n", info.ChatID)
}
