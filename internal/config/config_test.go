package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// TestLoad tests YAML parsing and environment expansion.
func TestLoad(t *testing.T) {
	t.Run("full config", func(t *testing.T) {
		path := writeConfig(t, `
api:
  base_url: https://api.example.com/api
  auth_token: tok-123
  portfolio_token: pf-456
  page_size: 50
  timeout: 10s
output:
  dir: /tmp/exports
log:
  level: debug
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if cfg.API.BaseURL != "https://api.example.com/api" {
			t.Errorf("BaseURL = %q", cfg.API.BaseURL)
		}
		if cfg.API.AuthToken != "tok-123" {
			t.Errorf("AuthToken = %q", cfg.API.AuthToken)
		}
		if cfg.API.PageSize != 50 {
			t.Errorf("PageSize = %d, want 50", cfg.API.PageSize)
		}
		if cfg.API.Timeout != 10*time.Second {
			t.Errorf("Timeout = %v, want 10s", cfg.API.Timeout)
		}
		if cfg.Output.Dir != "/tmp/exports" {
			t.Errorf("Output.Dir = %q", cfg.Output.Dir)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q", cfg.Log.Level)
		}
	})

	t.Run("environment variables are expanded", func(t *testing.T) {
		t.Setenv("KOINLY_AUTH_TOKEN", "env-auth")
		t.Setenv("KOINLY_PORTFOLIO_TOKEN", "env-portfolio")

		path := writeConfig(t, `
api:
  auth_token: ${KOINLY_AUTH_TOKEN}
  portfolio_token: ${KOINLY_PORTFOLIO_TOKEN}
`)

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.API.AuthToken != "env-auth" {
			t.Errorf("AuthToken = %q, want %q", cfg.API.AuthToken, "env-auth")
		}
		if cfg.API.PortfolioToken != "env-portfolio" {
			t.Errorf("PortfolioToken = %q, want %q", cfg.API.PortfolioToken, "env-portfolio")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := writeConfig(t, "api: [unclosed")
		if _, err := Load(path); err == nil {
			t.Error("expected parse error")
		}
	})
}

// TestDefaults tests default application.
func TestDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.ApplyDefaults()

	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.API.BaseURL, DefaultBaseURL)
	}
	if cfg.API.PageSize != DefaultPageSize {
		t.Errorf("PageSize = %d, want %d", cfg.API.PageSize, DefaultPageSize)
	}
	if cfg.API.Timeout != DefaultAPITimeout {
		t.Errorf("Timeout = %v, want %v", cfg.API.Timeout, DefaultAPITimeout)
	}
	if cfg.Output.Dir != DefaultOutputDir {
		t.Errorf("Output.Dir = %q, want %q", cfg.Output.Dir, DefaultOutputDir)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
}

// TestValidate tests required-field validation.
func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.ApplyDefaults()
		cfg.API.AuthToken = "a"
		cfg.API.PortfolioToken = "p"
		return cfg
	}

	t.Run("valid config passes", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing auth token", func(c *Config) { c.API.AuthToken = "" }},
		{"missing portfolio token", func(c *Config) { c.API.PortfolioToken = "" }},
		{"missing base url", func(c *Config) { c.API.BaseURL = "" }},
		{"zero page size", func(c *Config) { c.API.PageSize = 0 }},
		{"negative timeout", func(c *Config) { c.API.Timeout = -time.Second }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

// TestLogLevel tests level parsing.
func TestLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"DEBUG", slog.LevelDebug},
	}

	for _, tt := range tests {
		cfg := &Config{Log: LogConfig{Level: tt.in}}
		got, err := cfg.LogLevel()
		if err != nil {
			t.Errorf("LogLevel(%q): unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("LogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// TestFromEnv tests the file-less environment fallback.
func TestFromEnv(t *testing.T) {
	t.Setenv("KOINLY_AUTH_TOKEN", "env-a")
	t.Setenv("KOINLY_PORTFOLIO_TOKEN", "env-p")

	cfg := FromEnv()
	if cfg.API.AuthToken != "env-a" {
		t.Errorf("AuthToken = %q, want %q", cfg.API.AuthToken, "env-a")
	}
	if cfg.API.PortfolioToken != "env-p" {
		t.Errorf("PortfolioToken = %q, want %q", cfg.API.PortfolioToken, "env-p")
	}
	if cfg.API.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.API.BaseURL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
