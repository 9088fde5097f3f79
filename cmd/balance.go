package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// balanceCmd holds the flags for the 'balance' subcommand.
type balanceCmd struct {
	windowFlags
	date string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the balance on a given date" }
func (*balanceCmd) Usage() string {
	return `bgt balance [-s <start>] [-e <end>] [-initial <amount>] [-d <date>]

  Displays the balance on a date within the budget window: the running
  balance after the last transaction on or before that date. On the start
  date itself the balance is the initial amount, before any same-day
  transaction. Without -d, the final balance is displayed.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	c.windowFlags.SetFlags(f)
	f.StringVar(&c.date, "d", "", "Date of the balance (defaults to the end of the window).")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := c.Budget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.date == "" {
		fmt.Printf("%s on %s\n", b.FinalBalance(), b.Window().To)
		return subcommands.ExitSuccess
	}

	on, err := budget.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	balance, err := b.BalanceOn(on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s on %s\n", balance, on)
	return subcommands.ExitSuccess
}
