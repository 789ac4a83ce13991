package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	update     bool
	noProperty bool
	noMantra   bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard" }
func (*summaryCmd) Usage() string {
	return `wg summary [-u] [-no-property] [-no-mantra]

  Displays the dashboard: portfolio totals, allocation against the targets,
  rebalancing actions, goals, this month's contribution and the rental property.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "u", false, "Refresh the quotes before displaying the dashboard.")
	f.BoolVar(&c.noProperty, "no-property", false, "Do not display the property section.")
	f.BoolVar(&c.noMantra, "no-mantra", false, "Do not display the mantra.")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		if c.update {
			if err := a.refreshPrices(ctx); err != nil {
				// the dashboard is still meaningful with the previous quotes
				fmt.Fprintf(os.Stderr, "Error updating prices: %v\n", err)
			}
		}
		d := wealthguard.NewDashboard(a.settings, a.store.Snapshot(), time.Now())
		opts := a.renderOptions()
		opts.SkipProperty = c.noProperty
		opts.SkipMantra = c.noMantra
		printMarkdown(renderer.RenderDashboard(d, opts))
		return nil
	})
}
