// Package config loads the configuration of wealthguard.
//
// Values are layered: built-in defaults, then the TOML file, then the environment (a .env
// file in the working directory is loaded first), then command line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/period"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	Storage   StorageConfig   `toml:"storage"`
	Server    ServerConfig    `toml:"server"`
	Logging   LoggingConfig   `toml:"logging"`
	Quotes    QuotesConfig    `toml:"quotes"`
	Portfolio PortfolioConfig `toml:"portfolio"`
	Agent     AgentConfig     `toml:"agent"`
}

// StorageConfig selects where the records are persisted.
type StorageConfig struct {
	Backend string `toml:"backend"` // "file", "sqlite" or "memory"
	Dir     string `toml:"dir"`
}

// SQLitePath is the database file of the sqlite backend.
func (s StorageConfig) SQLitePath() string { return filepath.Join(s.Dir, "wealthguard.db") }

// CacheDir is the directory of the cached quote responses.
func (s StorageConfig) CacheDir() string { return filepath.Join(s.Dir, "cache") }

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string { return fmt.Sprintf("%s:%d", s.Host, s.Port) }

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `toml:"level"`
	Pretty bool   `toml:"pretty"`
}

// QuotesConfig selects the quote provider.
type QuotesConfig struct {
	Provider string `toml:"provider"` // "yahoo", "eodhd" or "static"
	BaseURL  string `toml:"base_url"`
	Timeout  string `toml:"timeout"` // a time.Duration, empty for none
	// CacheTTL is the lifetime of the cached provider responses, empty disables the cache.
	CacheTTL string `toml:"cache_ttl"`
	APIKey   string `toml:"-"` // only from EODHD_API_KEY
}

// CacheDuration parses CacheTTL. An empty ttl is 0.
func (q QuotesConfig) CacheDuration() (time.Duration, error) {
	if q.CacheTTL == "" {
		return 0, nil
	}
	return time.ParseDuration(q.CacheTTL)
}

// TimeoutDuration parses Timeout. An empty timeout is 0.
func (q QuotesConfig) TimeoutDuration() (time.Duration, error) {
	if q.Timeout == "" {
		return 0, nil
	}
	return time.ParseDuration(q.Timeout)
}

// PortfolioConfig holds the strategy. Empty instrument or goal lists use the built-in ones.
type PortfolioConfig struct {
	RebalanceThreshold float64                  `toml:"rebalance_threshold"`
	MonthlyMin         float64                  `toml:"monthly_min"`
	Markup             float64                  `toml:"markup"`
	Locale             string                   `toml:"locale"`
	Instruments        []wealthguard.Instrument `toml:"instruments"`
	Goals              []wealthguard.Goal       `toml:"goals"`
}

// AgentConfig configures the assistant.
type AgentConfig struct {
	Model  string `toml:"model"`
	APIKey string `toml:"-"` // only from GEMINI_API_KEY
}

// Load loads configuration with priority: defaults -> files -> env.
// Later files override earlier files. Empty paths are skipped.
func Load(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	// a missing .env is fine
	_ = godotenv.Load()
	applyEnvOverrides(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnvOverrides applies WG_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if v := os.Getenv("WG_STORAGE_BACKEND"); v != "" {
		config.Storage.Backend = v
	}
	if v := os.Getenv("WG_STORAGE_DIR"); v != "" {
		config.Storage.Dir = v
	}
	if v := os.Getenv("WG_SERVER_HOST"); v != "" {
		config.Server.Host = v
	}
	if v := os.Getenv("WG_SERVER_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			config.Server.Port = p
		}
	}
	if v := os.Getenv("WG_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	if v := os.Getenv("WG_LOG_PRETTY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			config.Logging.Pretty = b
		}
	}
	if v := os.Getenv("WG_QUOTES_PROVIDER"); v != "" {
		config.Quotes.Provider = v
	}
	if v := os.Getenv("WG_QUOTES_URL"); v != "" {
		config.Quotes.BaseURL = v
	}
	if v := os.Getenv("WG_QUOTES_CACHE_TTL"); v != "" {
		config.Quotes.CacheTTL = v
	}
	if v := os.Getenv("EODHD_API_KEY"); v != "" {
		config.Quotes.APIKey = v
	}
	if v := os.Getenv("WG_LOCALE"); v != "" {
		config.Portfolio.Locale = v
	}
	if v := os.Getenv("WG_MARKUP"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			config.Portfolio.Markup = f
		}
	}
	if v := os.Getenv("WG_AGENT_MODEL"); v != "" {
		config.Agent.Model = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		config.Agent.APIKey = v
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, dir string, port int, host string) {
	if dir != "" {
		config.Storage.Dir = dir
	}
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate reports every invalid value.
func (c *Config) Validate() error {
	var errs error
	switch c.Storage.Backend {
	case "file", "sqlite", "memory":
	default:
		errs = errors.Join(errs, fmt.Errorf("unknown storage backend %q", c.Storage.Backend))
	}
	switch c.Quotes.Provider {
	case "yahoo", "eodhd", "static":
	default:
		errs = errors.Join(errs, fmt.Errorf("unknown quotes provider %q", c.Quotes.Provider))
	}
	if _, err := c.Quotes.TimeoutDuration(); err != nil {
		errs = errors.Join(errs, fmt.Errorf("invalid quotes timeout: %w", err))
	}
	if ttl, err := c.Quotes.CacheDuration(); err != nil || ttl < 0 {
		errs = errors.Join(errs, fmt.Errorf("invalid quotes cache ttl %q", c.Quotes.CacheTTL))
	}
	if _, err := period.ParseLocale(c.Portfolio.Locale); err != nil {
		errs = errors.Join(errs, err)
	}
	if c.Portfolio.RebalanceThreshold < 0 {
		errs = errors.Join(errs, fmt.Errorf("negative rebalance threshold %v", c.Portfolio.RebalanceThreshold))
	}
	if c.Portfolio.Markup <= 0 {
		errs = errors.Join(errs, fmt.Errorf("markup must be positive, got %v", c.Portfolio.Markup))
	}
	if len(c.Portfolio.Instruments) > 0 {
		if err := wealthguard.Instruments(c.Portfolio.Instruments).Validate(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	return errs
}

// Settings returns the dashboard settings described by the portfolio section.
func (c *Config) Settings() wealthguard.Settings {
	s := wealthguard.DefaultSettings()
	if len(c.Portfolio.Instruments) > 0 {
		s.Instruments = wealthguard.Instruments(c.Portfolio.Instruments)
	}
	if len(c.Portfolio.Goals) > 0 {
		s.Goals = c.Portfolio.Goals
	}
	s.Strategy.RebalanceThreshold = c.Portfolio.RebalanceThreshold
	s.Strategy.MonthlyMin = c.Portfolio.MonthlyMin
	s.Markup = c.Portfolio.Markup
	if l, err := period.ParseLocale(strings.TrimSpace(c.Portfolio.Locale)); err == nil {
		s.Locale = l
	}
	return s
}
