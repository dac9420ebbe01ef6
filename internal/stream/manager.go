package stream

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/behrendco/odds-scraper/internal/api"
	"github.com/behrendco/odds-scraper/internal/channels"
	"github.com/behrendco/odds-scraper/internal/metrics"
)

// CatalogSource fetches the live-games catalog.
type CatalogSource interface {
	GetLiveGames(ctx context.Context, opts api.GetLiveGamesOptions) (*api.Catalog, error)
}

// ManagerConfig holds the settings for one live-stream session.
type ManagerConfig struct {
	Stream Config

	// MaxConcurrent caps how many subscription connections run at once.
	// 0 means unlimited: every task gets a connection immediately.
	MaxConcurrent int

	// Sportsbooks for the global filter task.
	Sportsbooks []string

	// Channels maps market types to the channel prefixes they contribute.
	Channels channels.Map

	// Fetch filters the catalog request.
	Fetch api.GetLiveGamesOptions
}

// Manager runs a full live-stream session: one catalog fetch, then one
// subscription runner per derived task.
type Manager struct {
	cfg     ManagerConfig
	source  CatalogSource
	sink    Sink
	logger  *slog.Logger
	metrics *metrics.Stream
}

// NewManager creates a Manager.
func NewManager(cfg ManagerConfig, source CatalogSource, sink Sink, logger *slog.Logger, m *metrics.Stream) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Channels == nil {
		cfg.Channels = channels.DefaultMap()
	}
	return &Manager{
		cfg:     cfg,
		source:  source,
		sink:    sink,
		logger:  logger,
		metrics: m,
	}
}

// Run executes the session and blocks until every subscription has ended.
// A fetch failure aborts before any subscription starts. Per-subscription
// failures are logged and never cancel sibling subscriptions.
func (m *Manager) Run(ctx context.Context) error {
	catalog, err := m.source.GetLiveGames(ctx, m.cfg.Fetch)
	if err != nil {
		return fmt.Errorf("fetch catalog: %w", err)
	}

	if err := m.sink.Catalog(catalog.Raw); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}

	derived := channels.Derive(catalog.Games, m.cfg.Channels)
	tasks := make([]channels.Task, 0, len(derived)+1)
	tasks = append(tasks, channels.GlobalFilter())
	tasks = append(tasks, derived...)

	m.logger.Info("starting subscriptions",
		"games", len(catalog.Games),
		"tasks", len(tasks),
		"max_concurrent", m.cfg.MaxConcurrent,
	)

	runner := NewRunner(m.cfg.Stream, m.sink, m.logger, m.metrics)

	var g errgroup.Group
	if m.cfg.MaxConcurrent > 0 {
		g.SetLimit(m.cfg.MaxConcurrent)
	}

	for _, task := range tasks {
		sub := NewSubscription(task, m.cfg.Sportsbooks)
		g.Go(func() error {
			if err := runner.Run(ctx, sub); err != nil {
				m.logger.Error("subscription ended",
					"task_id", sub.ID,
					"kind", sub.Task.Kind,
					"channel", sub.Task.Channel,
					"error", err,
				)
			}
			return nil
		})
	}

	g.Wait()
	m.logger.Info("all subscriptions ended")
	return nil
}
