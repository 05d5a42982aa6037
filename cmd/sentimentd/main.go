package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/tsawler/sentiment"
	"github.com/tsawler/sentiment/internal/config"
	"github.com/tsawler/sentiment/internal/logger"
	"github.com/tsawler/sentiment/internal/metrics"
	"github.com/tsawler/sentiment/internal/server"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// The logger depends on the config, so fall back to log here.
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupLogger(cfg *config.Config) *zap.Logger {
	zl, err := logger.New(cfg.LoggingConfig.Level, cfg.LoggingConfig.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return zl
}

func setupAnalyzer(cfg *config.Config, zl *zap.Logger) *sentiment.Analyzer {
	analyzer, err := sentiment.LoadAnalyzer(sentiment.DataFiles{
		Lexicon: cfg.LexiconConfig.Path,
		Emoji:   cfg.LexiconConfig.EmojiPath,
		Overlay: cfg.LexiconConfig.OverlayPath,
	})
	if err != nil {
		zl.Fatal("Failed to load analyzer data", zap.Error(err))
	}
	zl.Info("Analyzer ready",
		zap.Int("lexicon_entries", analyzer.Lexicon().Size()),
		zap.String("lexicon_path", cfg.LexiconConfig.Path),
		zap.String("overlay_path", cfg.LexiconConfig.OverlayPath))
	return analyzer
}

func main() {
	cfg := setupConfig()

	zl := setupLogger(cfg)
	defer func() { _ = zl.Sync() }()

	analyzer := setupAnalyzer(cfg, zl)

	srv, err := server.NewServer(cfg.ServerConfig, analyzer, zl, metrics.NewRegistry())
	if err != nil {
		zl.Fatal("Failed to create server", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		zl.Error("Server stopped with error", zap.Error(err))
		_ = zl.Sync()
		os.Exit(1)
	}
	zl.Info("Server stopped")
}
