package config

import (
	"time"

	"github.com/behrendco/odds-scraper/internal/channels"
)

// Default values for optional configuration fields.
const (
	DefaultLiveGamesURL = "https://49pzwry2rc.execute-api.us-east-1.amazonaws.com/prod/getLiveGames"
	DefaultWSURL        = "wss://ws.openodds.gg/ws"

	DefaultAPITimeout       = 30 * time.Second
	DefaultHandshakeTimeout = 10 * time.Second
	DefaultWriteTimeout     = 5 * time.Second

	// 0 keeps the historical behavior: one connection per channel, all at
	// once, no cap.
	DefaultMaxConcurrent = 0

	DefaultMetricsPort = 9090
	DefaultMetricsPath = "/metrics"
)

// DefaultSportsbooks is the global filter applied when none is configured.
var DefaultSportsbooks = []string{"PINNY"}

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.LiveGamesURL == "" {
		c.API.LiveGamesURL = DefaultLiveGamesURL
	}
	if c.API.WSURL == "" {
		c.API.WSURL = DefaultWSURL
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}

	// Stream defaults
	if c.Stream.HandshakeTimeout == 0 {
		c.Stream.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if c.Stream.WriteTimeout == 0 {
		c.Stream.WriteTimeout = DefaultWriteTimeout
	}

	// Filter defaults
	if len(c.Filter.Sportsbooks) == 0 {
		c.Filter.Sportsbooks = append([]string(nil), DefaultSportsbooks...)
	}

	// Channel defaults
	if len(c.Channels.MarketTypes) == 0 {
		c.Channels.MarketTypes = channels.DefaultMap()
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
