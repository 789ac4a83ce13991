// Command wg is the wealth dashboard: portfolio allocation, contributions, goals and the
// rental property ledger.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/wealthguard"
	"github.com/etnz/wealthguard/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	kinds := predict.Set{"transactions", "incomes", "expenses"}
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
			"dir":    predict.Dirs("*"),
			"v":      predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"summary": {Flags: map[string]complete.Predictor{
				"u":           predict.Nothing,
				"no-property": predict.Nothing,
				"no-mantra":   predict.Nothing,
			}},
			"prices": {Flags: map[string]complete.Predictor{"c": predict.Nothing}},
			"tx": {Flags: map[string]complete.Predictor{
				"etf":  predict.Set(wealthguard.DefaultInstruments.Names()),
				"head": predict.Nothing,
				"tail": predict.Nothing,
			}},
			"import": {Args: predict.Or(kinds, predict.Files("*.csv"), predict.Files("*.xlsx"))},
			"annual": {},
			"add-property": {Flags: map[string]complete.Predictor{
				"u": predict.Nothing,
			}},
			"mantra": {Flags: map[string]complete.Predictor{
				"r": predict.Nothing,
				"t": predict.Set{"caida", "euforia", "duda", "default", "paciencia", "disciplina"},
			}},
			"demo":   {},
			"reset":  {Flags: map[string]complete.Predictor{"tx": predict.Nothing}},
			"serve":  {},
			"assist": {},
		},
	}
}

func main() {
	// Runs only when invoked by the shell completion, then exits.
	completion().Complete("wg")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if sub := flag.Arg(0); sub != "" && !registered(sub) {
		if found, code := cmd.RunExtension(sub, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(context.Background())))
}

// registered reports whether name is a builtin subcommand.
func registered(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	for _, c := range cmd.Commands {
		if c.Name() == name {
			return true
		}
	}
	return false
}
