package config

import "time"

// Config is the root configuration for an export run.
type Config struct {
	API    APIConfig    `yaml:"api"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// APIConfig holds Koinly API settings. The tokens are the session credentials
// the web app stores client-side; this tool treats them as opaque values.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	AuthToken      string        `yaml:"auth_token"`
	PortfolioToken string        `yaml:"portfolio_token"`
	PageSize       int           `yaml:"page_size"`
	Timeout        time.Duration `yaml:"timeout"`
}

// OutputConfig holds export delivery settings.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"`
}
