package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/config"
	"github.com/etnz/wealthguard/quotes"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigFiles(t *testing.T) {
	t.Chdir(t.TempDir())

	files, err := configFiles()
	require.NoError(t, err)
	assert.Empty(t, files, "a missing default file is not an error")

	require.NoError(t, os.WriteFile(DefaultConfigFile, []byte("[server]\nport = 8080\n"), 0o644))
	files, err = configFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultConfigFile}, files)

	old := *configFile
	t.Cleanup(func() { *configFile = old })
	*configFile = "other.toml"
	files, err = configFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"other.toml"}, files)
}

func TestOpenApp(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := filepath.Join(t.TempDir(), "records")
	old := *dataDir
	t.Cleanup(func() { *dataDir = old })
	*dataDir = dir

	ctx := context.Background()
	a, err := openApp(ctx)
	require.NoError(t, err)
	require.NoError(t, a.store.LoadDemoData(ctx))
	require.NoError(t, a.close())

	assert.FileExists(t, filepath.Join(dir, "wealth-guard-storage.json"))

	// a second run reads the records back
	a, err = openApp(ctx)
	require.NoError(t, err)
	defer a.close()
	assert.NotEmpty(t, a.store.Transactions())
}

func TestOpenBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	for _, name := range []string{"file", "sqlite", "memory"} {
		b, closeBackend, err := openBackend(ctx, config.StorageConfig{Backend: name, Dir: dir})
		require.NoError(t, err, name)
		require.NoError(t, b.Save(ctx, []byte(`{}`)), name)
		data, err := b.Load(ctx)
		require.NoError(t, err, name)
		assert.Equal(t, `{}`, string(data), name)
		require.NoError(t, closeBackend(), name)
	}

	_, _, err := openBackend(ctx, config.StorageConfig{Backend: "s3", Dir: dir})
	assert.ErrorContains(t, err, `unknown storage backend "s3"`)
}

func TestNewRefresher(t *testing.T) {
	cache := filepath.Join(t.TempDir(), "cache")

	r, err := newRefresher(config.QuotesConfig{Provider: "yahoo", Timeout: "3s"}, cache, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "yahoo", r.Provider.Name())
	assert.Equal(t, "3s", r.Timeout.String())
	assert.NoDirExists(t, cache)

	r, err = newRefresher(config.QuotesConfig{Provider: "eodhd", CacheTTL: "1h"}, cache, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "eodhd", r.Provider.Name())
	assert.DirExists(t, cache)

	r, err = newRefresher(config.QuotesConfig{Provider: "static"}, cache, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, quotes.Static{}, r.Provider)
	assert.Zero(t, r.Timeout)

	_, err = newRefresher(config.QuotesConfig{Provider: "bloomberg"}, cache, zerolog.Nop())
	assert.Error(t, err)
	_, err = newRefresher(config.QuotesConfig{Provider: "yahoo", Timeout: "soon"}, cache, zerolog.Nop())
	assert.Error(t, err)
}

func TestFilterTransactions(t *testing.T) {
	all := []wealthguard.Transaction{
		{ID: "1", ETF: "A"}, {ID: "2", ETF: "B"}, {ID: "3", ETF: "A"}, {ID: "4", ETF: "A"},
	}
	ids := func(txs []wealthguard.Transaction) (res []string) {
		for _, tx := range txs {
			res = append(res, tx.ID)
		}
		return res
	}
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(filterTransactions(all, "", 0, 0)))
	assert.Equal(t, []string{"1", "3", "4"}, ids(filterTransactions(all, "A", 0, 0)))
	assert.Equal(t, []string{"1", "2"}, ids(filterTransactions(all, "", 2, 0)))
	assert.Equal(t, []string{"3", "4"}, ids(filterTransactions(all, "A", 0, 2)))
	assert.Empty(t, filterTransactions(all, "C", 0, 0))
}

func TestAddPropertyApply(t *testing.T) {
	c := &addPropertyCmd{}
	f := flag.NewFlagSet("add-property", flag.ContinueOnError)
	c.SetFlags(f)
	require.NoError(t, f.Parse([]string{"-u", "-value", "200000", "-rent", "900"}))

	p := wealthguard.Property{ID: "pt-1", Name: "Piso", CurrentValue: 185000, MonthlyRent: 850}
	c.apply(f, &p)

	assert.Equal(t, wealthguard.Property{ID: "pt-1", Name: "Piso", CurrentValue: 200000, MonthlyRent: 900}, p)
}

func TestJoinYears(t *testing.T) {
	assert.Equal(t, "2025, 2026", joinYears([]int{2025, 2026}))
	assert.Equal(t, "", joinYears(nil))
}
