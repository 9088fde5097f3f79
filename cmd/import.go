package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	file     string
	items    string
	name     string
	amount   string
	on       string
	every    string
	currency string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import items from a third-party JSON export" }
func (*importCmd) Usage() string {
	return `bgt import -file <export.json> -items <jsonpath> -name <jsonpath> -amount <jsonpath> -on <jsonpath> [-every <jsonpath>] [-currency <code>]

  Extracts items from a JSON export and appends them to the schedule file.
  Every app exports a different shape, so the item fields are located with
  jsonpath expressions evaluated inside each exported object.

Usage Examples:
$ bgt import -file export.json -items '$.transactions[*]' \
    -name '$.label' -amount '$.value' -on '$.date' -every '$.repeat' -currency EUR
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON export file to import from.")
	f.StringVar(&c.items, "items", "", "jsonpath selecting the list of objects to import.")
	f.StringVar(&c.name, "name", "", "jsonpath of the item name inside one object.")
	f.StringVar(&c.amount, "amount", "", "jsonpath of the amount inside one object.")
	f.StringVar(&c.on, "on", "", "jsonpath of the date inside one object.")
	f.StringVar(&c.every, "every", "", "Optional jsonpath of the recurrence pattern inside one object.")
	f.StringVar(&c.currency, "currency", "", "Currency code applied to imported amounts.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		return subcommands.ExitUsageError
	}

	raw, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	items, err := budget.ImportItems(doc, budget.ImportMapping{
		Items:    c.items,
		Name:     c.name,
		Amount:   c.amount,
		On:       c.on,
		Every:    c.every,
		Currency: c.currency,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing from %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	if len(items) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: nothing to import from %q\n", c.file)
		return subcommands.ExitSuccess
	}

	return AppendItems(items...)
}
