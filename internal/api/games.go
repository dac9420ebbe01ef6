package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

// ErrMissingLiveGames indicates the response did not contain the expected
// body.live_games path.
var ErrMissingLiveGames = errors.New("response missing body.live_games")

// GetLiveGamesOptions filters the live-games catalog. Empty fields are
// omitted from the request.
type GetLiveGamesOptions struct {
	Sport string // e.g. "basketball"
	Live  string // "true" or "false"
}

// Catalog is the result of one live-games fetch.
type Catalog struct {
	Games []Game

	// Raw is the verbatim live_games JSON array, kept so callers can
	// display the catalog exactly as the API returned it.
	Raw json.RawMessage
}

type liveGamesEnvelope struct {
	Body struct {
		LiveGames json.RawMessage `json:"live_games"`
	} `json:"body"`
}

// GetLiveGames fetches the current live-games catalog. There is no retry: a
// failure here is expected to abort the run before any subscriptions start.
func (c *Client) GetLiveGames(ctx context.Context, opts GetLiveGamesOptions) (*Catalog, error) {
	query := url.Values{}
	if opts.Sport != "" {
		query.Set("sport", opts.Sport)
	}
	if opts.Live != "" {
		query.Set("live", opts.Live)
	}

	var envelope liveGamesEnvelope
	if err := c.get(ctx, query, &envelope); err != nil {
		return nil, fmt.Errorf("get live games: %w", err)
	}

	raw := envelope.Body.LiveGames
	if raw == nil || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, fmt.Errorf("get live games: %w", ErrMissingLiveGames)
	}

	var games []Game
	if err := json.Unmarshal(raw, &games); err != nil {
		return nil, fmt.Errorf("get live games: decode live_games: %w", err)
	}

	c.logger.Debug("fetched live games", "count", len(games))

	return &Catalog{Games: games, Raw: raw}, nil
}
