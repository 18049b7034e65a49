package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL    = "https://api.koinly.io/api"
	DefaultPageSize   = 25
	DefaultAPITimeout = 30 * time.Second
	DefaultOutputDir  = "."
	DefaultLogLevel   = "info"
)

// ApplyDefaults fills in zero-valued optional fields.
func (c *Config) ApplyDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.PageSize == 0 {
		c.API.PageSize = DefaultPageSize
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = DefaultAPITimeout
	}
	if c.Output.Dir == "" {
		c.Output.Dir = DefaultOutputDir
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}
