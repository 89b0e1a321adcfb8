// Package config loads hordectl settings from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lapismyt/aihorde-go"
	"github.com/lapismyt/aihorde-go/internal/tracing"
)

// Environment variables that override the file.
const (
	EnvConfigPath  = "AI_HORDE_CONFIG"
	EnvAPIKey      = "AI_HORDE_API_KEY"
	EnvBaseURL     = "AI_HORDE_URL"
	EnvClientAgent = "AI_HORDE_CLIENT_AGENT"
	EnvHistoryPath = "AI_HORDE_HISTORY"
	EnvTraceExport = "AI_HORDE_TRACE_EXPORTER"
	EnvTraceTarget = "AI_HORDE_TRACE_ENDPOINT"
)

// Config is the hordectl configuration.
type Config struct {
	APIKey      string `yaml:"api_key"`
	BaseURL     string `yaml:"base_url"`
	ClientAgent string `yaml:"client_agent"`

	// HistoryPath is the SQLite file that records submitted requests.
	// "off" disables history.
	HistoryPath string `yaml:"history_path"`

	// PollInterval is a Go duration string, e.g. "5s".
	PollInterval string `yaml:"poll_interval"`

	// Timeout bounds each HTTP request. Empty means no timeout.
	Timeout string `yaml:"timeout"`

	Tracing tracing.Config `yaml:"tracing"`
}

// DefaultPath returns ~/.config/aihorde/config.yaml, or "" when the user
// config directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "aihorde", "config.yaml")
}

func defaultHistoryPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "aihorde", "history.db")
}

// Load reads the config file at path and applies environment overrides.
// An empty path means $AI_HORDE_CONFIG, then DefaultPath. A missing file is
// not an error unless path was given explicitly.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if path == "" {
		path = os.Getenv(EnvConfigPath)
		explicit = path != ""
	}
	if path == "" {
		path = DefaultPath()
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg.applyEnv()
	if cfg.HistoryPath == "" {
		cfg.HistoryPath = defaultHistoryPath()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIKey)); v != "" {
		c.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvClientAgent)); v != "" {
		c.ClientAgent = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvHistoryPath)); v != "" {
		c.HistoryPath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTraceExport)); v != "" {
		c.Tracing.Exporter = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTraceTarget)); v != "" {
		c.Tracing.Endpoint = v
	}
}

// Validate rejects settings the client would otherwise silently replace.
func (c *Config) Validate() error {
	if c.BaseURL != "" {
		if _, err := aihorde.ParseBaseURL(c.BaseURL); err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
	}
	if _, err := c.pollInterval(); err != nil {
		return err
	}
	if _, err := c.timeout(); err != nil {
		return err
	}
	return c.Tracing.Validate()
}

// HistoryEnabled reports whether submitted requests should be recorded.
func (c *Config) HistoryEnabled() bool {
	return c.HistoryPath != "" && c.HistoryPath != "off"
}

// Interval returns the poll interval, or aihorde.DefaultPollInterval.
func (c *Config) Interval() time.Duration {
	d, _ := c.pollInterval()
	return d
}

func (c *Config) pollInterval() (time.Duration, error) {
	if c.PollInterval == "" {
		return aihorde.DefaultPollInterval, nil
	}
	d, err := time.ParseDuration(c.PollInterval)
	if err != nil {
		return 0, fmt.Errorf("poll_interval: %w", err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("poll_interval: must be positive, got %s", c.PollInterval)
	}
	return d, nil
}

func (c *Config) timeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	return d, nil
}

// ClientOptions turns the config into client options.
func (c *Config) ClientOptions() []aihorde.Option {
	opts := []aihorde.Option{
		aihorde.WithAPIKey(c.APIKey),
		aihorde.WithBaseURL(c.BaseURL),
		aihorde.WithClientAgent(c.ClientAgent),
	}
	if d, _ := c.timeout(); d > 0 {
		opts = append(opts, aihorde.WithHTTPClient(&http.Client{Timeout: d}))
	}
	return opts
}
