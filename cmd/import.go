package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/importer"
	"github.com/google/subcommands"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import a CSV or XLSX file of records" }
func (*importCmd) Usage() string {
	categories := make([]string, 0, len(wealthguard.ExpenseCategories))
	for _, c := range wealthguard.ExpenseCategories {
		categories = append(categories, string(c))
	}
	return `wg import <transactions|incomes|expenses> <file>

  Imports the rows of a .csv or .xlsx file (first sheet, first row as headers).

  transactions: fecha, etf, cantidad, participaciones, precio
  incomes:      fecha, monto, concepto, inquilino
  expenses:     fecha, monto, categoria, concepto

  Rows missing a required value are skipped. Incomes and expenses are recorded
  for the registered property, see 'wg add-property'. Expense categories are
  ` + strings.Join(categories, ", ") + `, anything else is other.
`
}

func (*importCmd) SetFlags(f *flag.FlagSet) {}

func (*importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: import requires a kind and a file.")
		return subcommands.ExitUsageError
	}
	kind, err := importer.ParseKind(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	filename := f.Arg(1)

	return withApp(ctx, func(a *app) error {
		file, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", filename, err)
		}
		defer file.Close()

		im := importer.New(a.settings.Instruments, a.log)
		n, err := im.ImportInto(ctx, a.store, kind, filepath.Base(filename), file)
		if err != nil {
			return err
		}
		fmt.Printf("Successfully imported %d %s from %s\n", n, kind, filename)
		return nil
	})
}
