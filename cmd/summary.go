package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	windowFlags
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a per-month budget summary" }
func (*summaryCmd) Usage() string {
	return `bgt summary [-s <start>] [-e <end>] [-initial <amount>]

  Displays, for each calendar month in the window, the total inflows and
  outflows and the closing balance.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) { c.windowFlags.SetFlags(f) }

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := c.Budget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(budget.NewSummary(b)))
	return subcommands.ExitSuccess
}
