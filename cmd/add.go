package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	name     string
	amount   float64
	currency string
	on       string
	every    string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a cash-flow item to the schedule" }
func (*addCmd) Usage() string {
	return `bgt add -name <name> -amount <amount> [-on <date>] [-every <pattern>]

  Appends one item to the schedule file. Positive amounts are income,
  negative amounts are expenses. Without -every the item occurs exactly
  once, on its date.

Usage Examples:
# A monthly salary.
$ bgt add -name "Paycheck" -amount 1000 -on 2016-01-01 -every monthly

# A one-off expense, today.
$ bgt add -name "Concert tickets" -amount -120
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the item.")
	f.Float64Var(&c.amount, "amount", 0, "Amount of the item, negative for expenses.")
	f.StringVar(&c.currency, "currency", "", "Currency code of the amount.")
	f.StringVar(&c.on, "on", "0d", "Anchor date of the item (defaults to today).")
	f.StringVar(&c.every, "every", "", "Recurrence pattern (daily, weekly, monthly, yearly, or \"N days/weeks/months/years\").")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := budget.ParseDate(c.on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	every, err := budget.ParseRecurrence(c.every)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing recurrence: %v\n", err)
		return subcommands.ExitUsageError
	}
	item, err := budget.NewItem(c.name, budget.M(c.amount, c.currency), on, every)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	return AppendItems(item)
}
