package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	windowFlags
	model string
}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "ask the AI assistant to review the budget" }
func (*assistCmd) Usage() string {
	return `bgt assist [-s <start>] [-e <end>] [-initial <amount>] [question]

  Sends the budget table to Gemini and prints its commentary. Without a
  question, the assistant reviews the budget for risky months and saving
  opportunities. Requires the GEMINI_API_KEY environment variable.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	c.windowFlags.SetFlags(f)
	f.StringVar(&c.model, "model", "gemini-2.5-flash", "Gemini model to use.")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, err := c.Budget()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	question := "Review this budget: point out months where the balance gets low, and suggest realistic adjustments."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	prompt := fmt.Sprintf("You are a personal budgeting assistant. Here is a budget as a markdown table, with a running balance per transaction.\n\n%s\n\nPer-month summary:\n\n%s\n\n%s",
		renderer.BudgetMarkdown(b), renderer.SummaryMarkdown(budget.NewSummary(b)), question)

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error generating content:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(resp.Text())
	return subcommands.ExitSuccess
}
