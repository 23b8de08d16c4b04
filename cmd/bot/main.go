package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/mixelka/orderbot/internal/callback"
	"github.com/mixelka/orderbot/internal/config"
	"github.com/mixelka/orderbot/internal/database"
	"github.com/mixelka/orderbot/internal/formatter"
	"github.com/mixelka/orderbot/internal/logging"
	"github.com/mixelka/orderbot/internal/telegram"
	"github.com/mixelka/orderbot/internal/webhook"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, logging.Options{}).Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup logger
	logger := logging.New(os.Stdout, logging.Options{
		Level:             cfg.LogLevel,
		Format:            cfg.LogFormat,
		SentryDSN:         cfg.SentryDSN,
		SentryEnvironment: cfg.SentryEnvironment,
	})
	defer logging.Flush(2 * time.Second)
	logger.Info("starting order callback service")

	// Connect to database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run migrations
	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database migrations completed")

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("failed to load timezone", "error", err)
		os.Exit(1)
	}

	// Create Bot API client (optional, callbacks fail with 500 without it)
	var messenger callback.Messenger
	if cfg.HasBotToken() {
		client, err := telegram.NewClient(telegram.ClientConfig{
			Token:     cfg.BotToken,
			ServerURL: cfg.TelegramServerURL,
		}, logger)
		if err != nil {
			logger.Error("failed to create bot client", "error", err)
			os.Exit(1)
		}
		messenger = client

		if cfg.WebhookURL != "" {
			whCtx, cancel := context.WithTimeout(ctx, cfg.TelegramTimeout)
			err := client.SetWebhook(whCtx, cfg.WebhookURL, cfg.WebhookSecret)
			cancel()
			if err != nil {
				logger.Error("failed to register webhook", "error", err)
				os.Exit(1)
			}
		}
	} else {
		logger.Warn("BOT_TOKEN is not set, callbacks will be rejected")
	}

	router := callback.NewRouter(callback.RouterDeps{
		Messenger:   messenger,
		Audit:       db,
		Formatter:   formatter.NewTelegramFormatter(loc),
		StaffChatID: cfg.StaffChatID,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr: cfg.HTTPAddr,
		Handler: webhook.NewHandler(webhook.HandlerDeps{
			Router:  router,
			Path:    cfg.WebhookPath,
			Secret:  cfg.WebhookSecret,
			Timeout: cfg.TelegramTimeout,
			I18nDir: cfg.I18nDir,
			Logger:  logger,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "path", cfg.WebhookPath)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
		}
	case <-ctx.Done():
		logger.Info("received shutdown signal")
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shut down server", "error", err)
		}
	}

	logger.Info("server stopped")
}
