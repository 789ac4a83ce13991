package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	etf  string
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions" }
func (*txCmd) Usage() string {
	return `wg tx [-etf <name>] [-head <n>] [-tail <n>]

  Lists the recorded transactions in insertion order, with options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.etf, "etf", "", "Show only the transactions of this instrument.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	return withApp(ctx, func(a *app) error {
		transactions := filterTransactions(a.store.Transactions(), p.etf, p.head, p.tail)
		printMarkdown(renderer.RenderTransactions(transactions, a.renderOptions()))
		return nil
	})
}

// filterTransactions keeps the transactions of etf (all when empty), then the first head
// or the last tail of them.
func filterTransactions(all []wealthguard.Transaction, etf string, head, tail int) []wealthguard.Transaction {
	var transactions []wealthguard.Transaction
	for _, tx := range all {
		if etf == "" || tx.ETF == etf {
			transactions = append(transactions, tx)
		}
	}
	if head > 0 && len(transactions) > head {
		transactions = transactions[:head]
	}
	if tail > 0 && len(transactions) > tail {
		transactions = transactions[len(transactions)-tail:]
	}
	return transactions
}
