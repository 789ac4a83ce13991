package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wealthguard.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir()) // no .env
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("EODHD_API_KEY", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)

	s := cfg.Settings()
	assert.Equal(t, wealthguard.DefaultInstruments, s.Instruments)
	assert.Equal(t, wealthguard.DefaultMarkup, s.Markup)
	assert.Equal(t, period.Spanish, s.Locale)
}

func TestLoad_File(t *testing.T) {
	t.Chdir(t.TempDir())
	path := writeConfig(t, `
[storage]
backend = "sqlite"
dir = "/var/lib/wg"

[quotes]
timeout = "2s"

[portfolio]
rebalance_threshold = 7.5
markup = 1.0
locale = "en-GB"

[[portfolio.instruments]]
name = "World"
symbol = "IWDA.AS"
target_percent = 70

[[portfolio.instruments]]
name = "Bonds"
symbol = "AGGH.AS"
target_percent = 30
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "/var/lib/wg/wealthguard.db", cfg.Storage.SQLitePath())
	d, err := cfg.Quotes.TimeoutDuration()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, d)

	s := cfg.Settings()
	assert.Equal(t, []string{"World", "Bonds"}, s.Instruments.Names())
	assert.Equal(t, 7.5, s.Strategy.RebalanceThreshold)
	assert.Equal(t, 1.0, s.Markup)
	assert.Equal(t, period.English, s.Locale)
	assert.Equal(t, wealthguard.DefaultGoals, s.Goals)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(".env", []byte("WG_SERVER_PORT=9999\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("WG_SERVER_PORT") })
	t.Setenv("WG_STORAGE_BACKEND", "memory")
	t.Setenv("WG_LOG_PRETTY", "true")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("EODHD_API_KEY", "token")
	t.Setenv("WG_QUOTES_CACHE_TTL", "30m")

	cfg, err := Load(writeConfig(t, "[server]\nport = 8000\n\n[quotes]\nprovider = \"eodhd\"\n"))
	require.NoError(t, err)
	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.True(t, cfg.Logging.Pretty)
	assert.Equal(t, "secret", cfg.Agent.APIKey)
	assert.Equal(t, "eodhd", cfg.Quotes.Provider)
	assert.Equal(t, "token", cfg.Quotes.APIKey)
	ttl, err := cfg.Quotes.CacheDuration()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)

	ApplyFlagOverrides(cfg, "/tmp/wg", 7000, "0.0.0.0")
	assert.Equal(t, "0.0.0.0:7000", cfg.Server.Addr())
	assert.Equal(t, "/tmp/wg", cfg.Storage.Dir)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	testCases := map[string]string{
		"backend":   "[storage]\nbackend = \"s3\"\n",
		"locale":    "[portfolio]\nlocale = \"fr\"\n",
		"markup":    "[portfolio]\nmarkup = 0.0\n",
		"targets":   "[[portfolio.instruments]]\nname = \"A\"\ntarget_percent = 90\n",
		"timeout":   "[quotes]\ntimeout = \"soon\"\n",
		"provider":  "[quotes]\nprovider = \"bloomberg\"\n",
		"cache_ttl": "[quotes]\ncache_ttl = \"-1h\"\n",
		"malformed": "[storage\n",
	}
	for name, content := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
