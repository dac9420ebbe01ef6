package config

import (
	"time"

	"github.com/behrendco/odds-scraper/internal/channels"
)

// Config is the root configuration for the oddsview client.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Stream   StreamConfig   `yaml:"stream"`
	Filter   FilterConfig   `yaml:"filter"`
	Channels ChannelsConfig `yaml:"channels"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// APIConfig configures the REST and WebSocket endpoints.
type APIConfig struct {
	LiveGamesURL string        `yaml:"live_games_url"`
	WSURL        string        `yaml:"ws_url"`
	Timeout      time.Duration `yaml:"timeout"`

	// Optional catalog filters, passed through to the live-games request.
	Sport string `yaml:"sport"`
	Live  string `yaml:"live"`
}

// StreamConfig configures the subscription connections.
type StreamConfig struct {
	// MaxConcurrent caps simultaneous connections. 0 = unlimited.
	MaxConcurrent    int           `yaml:"max_concurrent"`
	HandshakeTimeout time.Duration `yaml:"handshake_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
}

// FilterConfig configures the global sportsbook filter.
type FilterConfig struct {
	Sportsbooks []string `yaml:"sportsbooks"`
}

// ChannelsConfig configures which market types contribute channels.
type ChannelsConfig struct {
	MarketTypes channels.Map `yaml:"market_types"`
}

// MetricsConfig configures the metrics/health server.
type MetricsConfig struct {
	Port int    `yaml:"port"`
	Path string `yaml:"path"`
}
