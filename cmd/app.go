// Package cmd implements the CLI application to manage a budget.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "schedule")
	c.Register(&importCmd{}, "schedule")

	c.Register(&tableCmd{}, "reports")
	c.Register(&balanceCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")

	c.Register(&assistCmd{}, "help")
	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var scheduleFile = flag.String("schedule-file", "budget.jsonl", "Path to the schedule file containing budget items (JSONL format)")

// DecodeScheduleFile reads the app schedule file. A missing file decodes as an
// empty schedule.
func DecodeScheduleFile() (*budget.Schedule, error) {
	f, err := os.Open(*scheduleFile)
	if errors.Is(err, fs.ErrNotExist) {
		return budget.NewSchedule(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open schedule file %q: %w", *scheduleFile, err)
	}
	defer f.Close()

	s, err := budget.DecodeSchedule(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read schedule file %q: %w", *scheduleFile, err)
	}
	return s, nil
}

// AppendItems appends items to the app schedule file, creating it if needed.
func AppendItems(items ...budget.Item) subcommands.ExitStatus {
	f, err := os.OpenFile(*scheduleFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening schedule file %q: %v\n", *scheduleFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	for _, it := range items {
		if err := budget.EncodeItem(f, it); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing to schedule file %q: %v\n", *scheduleFile, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Successfully appended %d item(s) to %s\n", len(items), *scheduleFile)
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown to the terminal, falling back to the raw text
// when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
