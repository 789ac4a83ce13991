package cmd

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/wealthguard/config"
	"github.com/etnz/wealthguard/importer"
	"github.com/etnz/wealthguard/server"
	"github.com/google/subcommands"
)

type serveCmd struct {
	host string
	port int
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the dashboard JSON API" }
func (*serveCmd) Usage() string {
	return `wg serve [-host <host>] [-port <port>]

  Serves the dashboard, the records, the imports and the quote refresh over HTTP
  until interrupted.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.host, "host", "", "Listen host. Overrides the configuration.")
	f.IntVar(&c.port, "port", 0, "Listen port. Overrides the configuration.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		config.ApplyFlagOverrides(a.cfg, "", c.port, c.host)
		refresher, err := newRefresher(a.cfg.Quotes, a.cfg.Storage.CacheDir(), a.log)
		if err != nil {
			return err
		}
		srv := server.New(server.Config{
			Addr:      a.cfg.Server.Addr(),
			Log:       a.log,
			Store:     a.store,
			Importer:  importer.New(a.settings.Instruments, a.log),
			Refresher: refresher,
			Settings:  a.settings,
		})

		ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() { errc <- srv.Start() }()

		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
