package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/budget/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion for bgt. When the binary is invoked by
// the shell's completion machinery it prints candidates and exits; in a normal
// run it does nothing.
func completion() {
	window := map[string]complete.Predictor{
		"s":        predict.Something,
		"e":        predict.Something,
		"initial":  predict.Something,
		"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
	}
	balance := map[string]complete.Predictor{"d": predict.Something}
	for k, v := range window {
		balance[k] = v
	}

	cmp := &complete.Command{
		Flags: map[string]complete.Predictor{
			"schedule-file": predict.Files("*.jsonl"),
		},
		Sub: map[string]*complete.Command{
			"add": {Flags: map[string]complete.Predictor{
				"name":     predict.Something,
				"amount":   predict.Something,
				"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
				"on":       predict.Something,
				"every":    predict.Set{"daily", "weekly", "monthly", "yearly"},
			}},
			"import": {Flags: map[string]complete.Predictor{
				"file":     predict.Files("*.json"),
				"items":    predict.Something,
				"name":     predict.Something,
				"amount":   predict.Something,
				"on":       predict.Something,
				"every":    predict.Something,
				"currency": predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"},
			}},
			"table":   {Flags: window},
			"summary": {Flags: window},
			"balance": {Flags: balance},
			"assist":  {Flags: window},
			"topic":   {Args: predict.Set{"readme", "recurrence", "balance", "import", "*"}},
		},
	}
	cmp.Complete("bgt")
}
