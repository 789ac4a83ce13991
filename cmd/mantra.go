package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/google/subcommands"
)

type mantraCmd struct {
	random  bool
	trigger string
}

func (*mantraCmd) Name() string     { return "mantra" }
func (*mantraCmd) Synopsis() string { return "print a reminder to keep to the plan" }
func (*mantraCmd) Usage() string {
	return `wg mantra [-r | -t <trigger>]

  Prints the mantra matching the state of the portfolio, a random one with -r,
  or the one of a trigger with -t (caida, euforia, duda, default, paciencia, disciplina).
`
}

func (c *mantraCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.random, "r", false, "Print a random mantra.")
	f.StringVar(&c.trigger, "t", "", "Print the mantra of this trigger.")
}

func (c *mantraCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		m, ok := c.pick(a)
		if !ok {
			return errors.New("no mantra configured")
		}
		fmt.Println(m.Text)
		return nil
	})
}

func (c *mantraCmd) pick(a *app) (wealthguard.Mantra, bool) {
	mantras := a.settings.Mantras
	switch {
	case c.random:
		return wealthguard.RandomMantra(mantras, rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)))
	case c.trigger != "":
		for _, m := range mantras {
			if m.Trigger == c.trigger {
				return m, true
			}
		}
		return wealthguard.Mantra{}, false
	default:
		d := wealthguard.NewDashboard(a.settings, a.store.Snapshot(), time.Now())
		if d.Mantra == nil {
			return wealthguard.Mantra{}, false
		}
		return *d.Mantra, true
	}
}
