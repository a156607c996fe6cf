package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocabtrainer/internal/config"
	"vocabtrainer/internal/domain"
	"vocabtrainer/internal/handler"
	"vocabtrainer/internal/middleware"
	"vocabtrainer/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting vocabulary trainer bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully", zap.String("storage", cfg.Storage.Backend))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	wordRepo, closer, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to open storage", zap.Error(err))
	}
	defer closer.Close()

	// Initialize services
	wordService := service.NewWordService(wordRepo, service.NewSelector(nil), logger)

	// Bootstrap failures are reported but not fatal; the bot shows an empty list
	initCtx, initCancel := context.WithTimeout(ctx, 30*time.Second)
	if err := wordService.Init(initCtx, seedSource(cfg)); err != nil {
		if errors.Is(err, domain.ErrBootstrap) {
			logger.Error("Failed to bootstrap word list", zap.Error(err))
		} else {
			logger.Error("Failed to load word list", zap.Error(err))
		}
	}
	initCancel()

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.Logging(logger))

	// Initialize handler
	h := handler.NewHandler(bot, wordService, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}
