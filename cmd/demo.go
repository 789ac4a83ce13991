package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type demoCmd struct{}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "replace the records by the demo data" }
func (*demoCmd) Usage() string {
	return `wg demo

  Replaces the transactions, history and property records by a demo set. Quotes are kept.
`
}

func (*demoCmd) SetFlags(f *flag.FlagSet) {}

func (*demoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		if err := a.store.LoadDemoData(ctx); err != nil {
			return err
		}
		fmt.Println("Demo data loaded")
		return nil
	})
}

type resetCmd struct {
	transactions bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "erase the stored records" }
func (*resetCmd) Usage() string {
	return `wg reset [-tx]

  Erases every stored record, or only the transactions with -tx.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.transactions, "tx", false, "Erase only the transactions.")
}

func (c *resetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		if c.transactions {
			if err := a.store.ClearTransactions(ctx); err != nil {
				return err
			}
			fmt.Println("Transactions erased")
			return nil
		}
		if err := a.store.ClearAll(ctx); err != nil {
			return err
		}
		fmt.Println("All records erased")
		return nil
	})
}
