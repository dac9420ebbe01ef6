// gamesdump fetches the live-games catalog once and pretty-prints it.
// Usage: go run ./cmd/gamesdump [-sport basketball] [-live true]
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/behrendco/odds-scraper/internal/api"
	"github.com/behrendco/odds-scraper/internal/config"
	"github.com/behrendco/odds-scraper/internal/writer"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	sport := flag.String("sport", "", "filter by sport")
	live := flag.String("live", "", "filter by liveness (true/false)")
	flag.Parse()

	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	client := api.NewClient(cfg.API.LiveGamesURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger),
	)

	catalog, err := client.GetLiveGames(context.Background(), api.GetLiveGamesOptions{
		Sport: *sport,
		Live:  *live,
	})
	if err != nil {
		logger.Error("fetch failed", "error", err)
		os.Exit(1)
	}

	console := writer.NewConsole(os.Stdout)
	if err := console.Catalog(catalog.Raw); err != nil {
		logger.Error("print failed", "error", err)
		os.Exit(1)
	}

	logger.Info("fetched live games", "count", len(catalog.Games))
}
