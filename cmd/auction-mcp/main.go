package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/tonlaunch/auction-mcp/internal/api"
	"github.com/tonlaunch/auction-mcp/internal/config"
	"github.com/tonlaunch/auction-mcp/internal/tools"
	"github.com/tonlaunch/auction-mcp/internal/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (built-in defaults when empty)")
	flag.Parse()

	// Stdout belongs to the tool protocol; all logging goes to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	logger.Info("starting auction adapter",
		"version", version.Version,
		"commit", version.Commit,
		"api_url", cfg.API.BaseURL,
		"wallet_validation", cfg.Wallet.Validation,
	)

	client := api.NewClient(cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithTimeout(cfg.API.Timeout),
		api.WithCalmTokens(cfg.CalmEnabled(), cfg.Calm.MaxTTL),
	)

	s := server.NewMCPServer("auction-mcp", version.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	tools.Register(s, tools.NewHandler(client, cfg, logger))

	// A shutdown signal is a graceful stop: the host is done with us.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		os.Exit(0)
	}()

	if err := server.ServeStdio(s); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server terminated", "error", err)
		os.Exit(1)
	}

	logger.Info("shutdown complete")
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}

func logLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
