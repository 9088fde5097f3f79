package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

// tableCmd holds the flags for the 'table' subcommand.
type tableCmd struct {
	windowFlags
}

func (*tableCmd) Name() string     { return "table" }
func (*tableCmd) Synopsis() string { return "display the full budget transaction table" }
func (*tableCmd) Usage() string {
	return `bgt table [-s <start>] [-e <end>] [-initial <amount>]

  Expands the schedule over the window and displays every transaction in
  chronological order with its running balance.

Usage Examples:
# The next 90 days, starting from nothing.
$ bgt table

# A fixed window with an initial amount.
$ bgt table -s 2015-12-15 -e 2016-03-02 -initial 1000
`
}

func (c *tableCmd) SetFlags(f *flag.FlagSet) { c.windowFlags.SetFlags(f) }

func (c *tableCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := c.Budget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BudgetMarkdown(b))
	return subcommands.ExitSuccess
}
