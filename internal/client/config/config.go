package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/dmitrijs2005/bookit/internal/logging"
)

// Config holds runtime settings for the bookit CLI.
type Config struct {
	ServerBaseURL       string
	OnlineCheckInterval time.Duration
	DatabasePath        string
	RequestTimeout      time.Duration
	RequestsPerSecond   float64
	LogLevel            string
	LogBackend          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8000"
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabasePath = "bookit.db"
	c.RequestTimeout = 10 * time.Second
	c.RequestsPerSecond = 5
	c.LogLevel = "info"
	c.LogBackend = logging.BackendSlog
}

// LoadConfig applies defaults, then the JSON file (if any), then flags, and
// validates the result.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var problems []string

	if u, err := url.Parse(c.ServerBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("server base URL must be absolute, got: %q", c.ServerBaseURL))
	}
	if c.OnlineCheckInterval <= 0 {
		problems = append(problems, fmt.Sprintf("online check interval must be positive, got: %s", c.OnlineCheckInterval))
	}
	if c.DatabasePath == "" {
		problems = append(problems, "database path cannot be empty")
	}
	if c.RequestTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("request timeout must be positive, got: %s", c.RequestTimeout))
	}
	if c.RequestsPerSecond <= 0 {
		problems = append(problems, fmt.Sprintf("requests per second must be positive, got: %v", c.RequestsPerSecond))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level: %q", c.LogLevel))
	}
	switch c.LogBackend {
	case logging.BackendSlog, logging.BackendZap:
	default:
		problems = append(problems, fmt.Sprintf("unknown log backend: %q", c.LogBackend))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
