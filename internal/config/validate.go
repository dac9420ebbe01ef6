package config

import (
	"errors"
	"fmt"
	"net/url"
)

// Validate checks the configuration for errors. Defaults should be applied
// first.
func (c *Config) Validate() error {
	var errs []error

	if err := validateHTTPURL(c.API.LiveGamesURL); err != nil {
		errs = append(errs, fmt.Errorf("api.live_games_url: %w", err))
	}
	if err := validateWSURL(c.API.WSURL); err != nil {
		errs = append(errs, fmt.Errorf("api.ws_url: %w", err))
	}
	if c.API.Timeout < 0 {
		errs = append(errs, errors.New("api.timeout must not be negative"))
	}

	if c.Stream.MaxConcurrent < 0 {
		errs = append(errs, errors.New("stream.max_concurrent must not be negative"))
	}
	if c.Stream.HandshakeTimeout < 0 {
		errs = append(errs, errors.New("stream.handshake_timeout must not be negative"))
	}
	if c.Stream.WriteTimeout < 0 {
		errs = append(errs, errors.New("stream.write_timeout must not be negative"))
	}

	for _, book := range c.Filter.Sportsbooks {
		if book == "" {
			errs = append(errs, errors.New("filter.sportsbooks must not contain empty entries"))
			break
		}
	}

	for marketType, prefixes := range c.Channels.MarketTypes {
		if marketType == "" {
			errs = append(errs, errors.New("channels.market_types must not contain an empty market type"))
		}
		if len(prefixes) == 0 {
			errs = append(errs, fmt.Errorf("channels.market_types.%s must list at least one prefix", marketType))
		}
		for _, prefix := range prefixes {
			if prefix == "" {
				errs = append(errs, fmt.Errorf("channels.market_types.%s must not contain empty prefixes", marketType))
				break
			}
		}
	}

	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		errs = append(errs, fmt.Errorf("metrics.port %d out of range", c.Metrics.Port))
	}
	if c.Metrics.Path == "" || c.Metrics.Path[0] != '/' {
		errs = append(errs, fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path))
	}

	return errors.Join(errs...)
}

func validateHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme %q is not http or https", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}

func validateWSURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("scheme %q is not ws or wss", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("missing host")
	}
	return nil
}
