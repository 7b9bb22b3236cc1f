package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/app"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/config"
	"github.com/vikiase/BTC-Price-Telegram-Bot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger needs the config, so these two failures go to stderr.
		_, _ = os.Stderr.WriteString("config error: " + err.Error() + "\n")
		os.Exit(2)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		_, _ = os.Stderr.WriteString("logger init error: " + err.Error() + "\n")
		os.Exit(2)
	}
	// Sync can fail on stderr-backed sinks; nothing useful to do with it.
	defer func() { _ = log.Sync() }()

	application, err := app.New(cfg, log)
	if err != nil {
		log.Fatal("app init failed", zap.Error(err))
	}

	if err := application.Run(context.Background()); err != nil {
		log.Fatal("app run failed", zap.Error(err))
	}
}
