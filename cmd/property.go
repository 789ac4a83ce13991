package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/renderer"
	"github.com/google/subcommands"
)

type addPropertyCmd struct {
	update        bool
	name          string
	location      string
	purchaseDate  string
	purchasePrice float64
	currentValue  float64
	monthlyRent   float64
}

func (*addPropertyCmd) Name() string     { return "add-property" }
func (*addPropertyCmd) Synopsis() string { return "register the rental property" }
func (*addPropertyCmd) Usage() string {
	return `wg add-property -name <name> [-location <location>] [-purchase-date <YYYY-MM>] [-purchase-price <n>] [-value <n>] [-rent <n>]
wg add-property -u [flags]

  Registers a rental property. With -u, updates the registered property instead:
  only the flags explicitly set are changed.
`
}

func (c *addPropertyCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "u", false, "Update the registered property.")
	f.StringVar(&c.name, "name", "", "Name of the property.")
	f.StringVar(&c.location, "location", "", "Location of the property.")
	f.StringVar(&c.purchaseDate, "purchase-date", "", "Purchase month, YYYY-MM.")
	f.Float64Var(&c.purchasePrice, "purchase-price", 0, "Purchase price.")
	f.Float64Var(&c.currentValue, "value", 0, "Current value, the base of the yield.")
	f.Float64Var(&c.monthlyRent, "rent", 0, "Expected monthly rent.")
}

// apply copies the flags explicitly set in f to p.
func (c *addPropertyCmd) apply(f *flag.FlagSet, p *wealthguard.Property) {
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			p.Name = c.name
		case "location":
			p.Location = c.location
		case "purchase-date":
			p.PurchaseDate = c.purchaseDate
		case "purchase-price":
			p.PurchasePrice = c.purchasePrice
		case "value":
			p.CurrentValue = c.currentValue
		case "rent":
			p.MonthlyRent = c.monthlyRent
		}
	})
}

func (c *addPropertyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.update && c.name == "" {
		fmt.Fprintln(os.Stderr, "Error: -name is required.")
		return subcommands.ExitUsageError
	}
	return withApp(ctx, func(a *app) error {
		if c.update {
			active, ok := a.store.ActiveProperty()
			if !ok {
				return errors.New("no property registered, add one first")
			}
			if err := a.store.UpdateProperty(ctx, active.ID, func(p *wealthguard.Property) { c.apply(f, p) }); err != nil {
				return err
			}
			fmt.Printf("Successfully updated property %q\n", active.ID)
			return nil
		}
		var p wealthguard.Property
		c.apply(f, &p)
		p, err := a.store.AddProperty(ctx, p)
		if err != nil {
			return err
		}
		fmt.Printf("Successfully added property %q with id %s\n", p.Name, p.ID)
		return nil
	})
}

type annualCmd struct {
	year int
}

func (*annualCmd) Name() string     { return "annual" }
func (*annualCmd) Synopsis() string { return "display the yearly figures of the rental property" }
func (*annualCmd) Usage() string {
	return `wg annual [-y <year>]

  Displays the incomes, expenses and net of the rental property month by month.
`
}

func (c *annualCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", time.Now().Year(), "Year to display.")
}

func (c *annualCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withApp(ctx, func(a *app) error {
		snap := a.store.Snapshot()
		data := wealthguard.CalculateAnnualPropertyData(snap.Incomes, snap.Expenses, c.year, a.settings.Locale)
		printMarkdown(renderer.RenderPropertyAnnual(data, a.renderOptions()))
		if years := wealthguard.PropertyYears(snap.Incomes, snap.Expenses); len(years) > 0 {
			fmt.Println("Years with records:", joinYears(years))
		}
		return nil
	})
}

// joinYears formats years as "2025, 2026".
func joinYears(years []int) string {
	s := make([]string, 0, len(years))
	for _, y := range years {
		s = append(s, strconv.Itoa(y))
	}
	return strings.Join(s, ", ")
}
