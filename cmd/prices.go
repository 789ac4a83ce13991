package cmd

import (
	"context"
	"flag"

	"github.com/etnz/wealthguard/renderer"
	"github.com/google/subcommands"
)

type pricesCmd struct {
	cached bool
}

func (*pricesCmd) Name() string     { return "prices" }
func (*pricesCmd) Synopsis() string { return "refresh and display the latest quotes" }
func (*pricesCmd) Usage() string {
	return `wg prices [-c]

  Fetches the latest quote of every instrument, stores them and displays them.
`
}

func (c *pricesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.cached, "c", false, "Display the stored quotes without refreshing them.")
}

func (c *pricesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		if !c.cached {
			if err := a.refreshPrices(ctx); err != nil {
				return err
			}
		}
		printMarkdown(renderer.RenderPrices(a.settings.Instruments, a.store.Prices(), a.renderOptions()))
		return nil
	})
}

// refreshPrices fetches the quotes and replaces the stored ones.
func (a *app) refreshPrices(ctx context.Context) error {
	r, err := newRefresher(a.cfg.Quotes, a.cfg.Storage.CacheDir(), a.log)
	if err != nil {
		return err
	}
	prices, err := r.GetPrices(ctx, a.settings.Instruments)
	if err != nil {
		return err
	}
	return a.store.SetPrices(ctx, prices)
}
