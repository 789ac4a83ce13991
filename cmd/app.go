// Package cmd implements the CLI application of the wealth dashboard.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/config"
	"github.com/etnz/wealthguard/logger"
	"github.com/etnz/wealthguard/quotes"
	"github.com/etnz/wealthguard/renderer"
	"github.com/etnz/wealthguard/store"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// DefaultConfigFile is read when it exists and no -config flag is given.
const DefaultConfigFile = "wealthguard.toml"

var (
	configFile = flag.String("config", "", "Path to the TOML configuration file. Defaults to "+DefaultConfigFile+" when it exists.")
	dataDir    = flag.String("dir", "", "Directory of the stored records. Overrides the configuration.")
	Verbose    = flag.Bool("v", false, "Log debug messages.")
)

// Commands lists every subcommand in help order.
var Commands = []subcommands.Command{
	&summaryCmd{},
	&pricesCmd{},
	&txCmd{},
	&importCmd{},
	&annualCmd{},
	&addPropertyCmd{},
	&mantraCmd{},
	&demoCmd{},
	&resetCmd{},
	&serveCmd{},
	&assistCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// configFiles returns the configuration files to load.
func configFiles() ([]string, error) {
	if *configFile != "" {
		return []string{*configFile}, nil
	}
	if _, err := os.Stat(DefaultConfigFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return []string{DefaultConfigFile}, nil
}

// app is the set of collaborators shared by the subcommands.
type app struct {
	cfg      *config.Config
	settings wealthguard.Settings
	log      zerolog.Logger
	store    *store.Store
	close    func() error
}

// loadConfig loads the layered configuration and the global flags.
func loadConfig() (*config.Config, error) {
	files, err := configFiles()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	config.ApplyFlagOverrides(cfg, *dataDir, 0, "")
	if *Verbose {
		cfg.Logging.Level = "debug"
	}
	return cfg, nil
}

// openApp loads the configuration, sets the global logger and opens the store.
func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	log := logger.New(logger.Config{Level: cfg.Logging.Level, Pretty: cfg.Logging.Pretty})
	logger.SetGlobalLogger(log)

	settings := cfg.Settings()
	backend, closeBackend, err := openBackend(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	st, err := store.Open(ctx, backend, store.Options{
		Markup: settings.Markup,
		Locale: settings.Locale,
		Logger: log,
	})
	if err != nil {
		closeBackend()
		return nil, err
	}
	return &app{cfg: cfg, settings: settings, log: log, store: st, close: closeBackend}, nil
}

// openBackend creates the storage backend named by the configuration.
func openBackend(ctx context.Context, cfg config.StorageConfig) (store.Backend, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Backend {
	case "file":
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("could not create storage directory %q: %w", cfg.Dir, err)
		}
		return store.FileBackend{Dir: cfg.Dir}, noop, nil
	case "sqlite":
		if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("could not create storage directory %q: %w", cfg.Dir, err)
		}
		db, err := store.OpenSQLite(ctx, cfg.SQLitePath())
		if err != nil {
			return nil, nil, err
		}
		return db, db.Close, nil
	case "memory":
		return &store.MemoryBackend{}, noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// newRefresher creates the quote refresher configured in cfg. Provider responses are cached
// in cacheDir when a cache ttl is set.
func newRefresher(cfg config.QuotesConfig, cacheDir string, log zerolog.Logger) (*quotes.Refresher, error) {
	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("invalid quotes timeout %q: %w", cfg.Timeout, err)
	}
	ttl, err := cfg.CacheDuration()
	if err != nil {
		return nil, fmt.Errorf("invalid quotes cache ttl %q: %w", cfg.CacheTTL, err)
	}
	client := &http.Client{Timeout: timeout}
	if ttl > 0 {
		if err := os.MkdirAll(cacheDir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create cache directory %q: %w", cacheDir, err)
		}
		client = quotes.NewCachedClient(cacheDir, ttl, timeout)
	}
	var p quotes.Provider
	switch cfg.Provider {
	case "yahoo":
		p = &quotes.Yahoo{BaseURL: cfg.BaseURL, Client: client}
	case "eodhd":
		p = &quotes.EODHD{APIKey: cfg.APIKey, BaseURL: cfg.BaseURL, Client: client}
	case "static":
		p = quotes.Static{}
	default:
		return nil, fmt.Errorf("unknown quote provider %q", cfg.Provider)
	}
	r := quotes.NewRefresher(p, log)
	r.Timeout = timeout
	return r, nil
}

// renderOptions returns the markdown options of the reports.
func (a *app) renderOptions() renderer.RenderOptions {
	return renderer.RenderOptions{Currency: wealthguard.DefaultCurrency}
}

// printMarkdown prints md rendered for the terminal.
func printMarkdown(md string) { fmt.Print(renderMarkdown(md)) }

// renderMarkdown renders md for the terminal, or returns it raw when it cannot.
func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return md + "\n"
	}
	out, err := r.Render(md)
	if err != nil {
		return md + "\n"
	}
	return out
}

// withApp runs f with an opened app and maps errors to an exit status.
func withApp(ctx context.Context, f func(a *app) error) subcommands.ExitStatus {
	a, err := openApp(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	defer a.close()
	if err := f(a); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
