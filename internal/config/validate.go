package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.AuthToken == "" {
		return errors.New("api.auth_token is required (set KOINLY_AUTH_TOKEN)")
	}
	if c.API.PortfolioToken == "" {
		return errors.New("api.portfolio_token is required (set KOINLY_PORTFOLIO_TOKEN)")
	}
	if c.API.PageSize < 1 {
		return fmt.Errorf("api.page_size must be >= 1, got %d", c.API.PageSize)
	}
	if c.API.Timeout < 0 {
		return errors.New("api.timeout must not be negative")
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses the configured log level.
func (c *Config) LogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level must be one of debug, info, warn, error; got %q", c.Log.Level)
	}
}
