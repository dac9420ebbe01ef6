package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/behrendco/odds-scraper/internal/api"
	"github.com/behrendco/odds-scraper/internal/config"
	"github.com/behrendco/odds-scraper/internal/metrics"
	"github.com/behrendco/odds-scraper/internal/stream"
	"github.com/behrendco/odds-scraper/internal/version"
	"github.com/behrendco/odds-scraper/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional, defaults apply without one)")
	flag.Parse()

	// .env values feed the ${VAR} expansion in the config file.
	_ = godotenv.Load()

	// Log to stderr; stdout carries the catalog and the update stream.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting oddsview",
		"version", version.Version,
		"commit", version.Commit,
	)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	streamMetrics := metrics.NewStream(prometheus.DefaultRegisterer)
	metricsServer := metrics.StartServer(cfg.Metrics.Port, cfg.Metrics.Path, logger)
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		metricsServer.Shutdown(shutdownCtx)
	}()

	client := api.NewClient(cfg.API.LiveGamesURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger),
	)

	manager := stream.NewManager(stream.ManagerConfig{
		Stream: stream.Config{
			URL:              cfg.API.WSURL,
			HandshakeTimeout: cfg.Stream.HandshakeTimeout,
			WriteTimeout:     cfg.Stream.WriteTimeout,
		},
		MaxConcurrent: cfg.Stream.MaxConcurrent,
		Sportsbooks:   cfg.Filter.Sportsbooks,
		Channels:      cfg.Channels.MarketTypes,
		Fetch: api.GetLiveGamesOptions{
			Sport: cfg.API.Sport,
			Live:  cfg.API.Live,
		},
	}, client, writer.NewConsole(os.Stdout), logger, streamMetrics)

	if err := manager.Run(ctx); err != nil {
		logger.Error("live stream failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadAndValidate(path)
}
