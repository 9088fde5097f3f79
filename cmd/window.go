package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/budget"
)

// windowFlags holds the flags shared by all report commands: the budget
// window and the initial amount. They are validated here, at the boundary,
// so the engine only ever sees typed values.
type windowFlags struct {
	start    string
	end      string
	initial  float64
	currency string
}

func (w *windowFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&w.start, "s", "0d", "Start date of the budget window. See the user manual for supported date formats.")
	f.StringVar(&w.end, "e", "", fmt.Sprintf("End date of the budget window (defaults to start + %d days).", budget.DefaultHorizonDays))
	f.Float64Var(&w.initial, "initial", 0, "Initial amount on the start date.")
	f.StringVar(&w.currency, "currency", "", "Currency code of the initial amount (defaults to the items' currency).")
}

// Window parses and validates the window flags.
func (w *windowFlags) Window() (budget.Range, error) {
	start, err := budget.ParseDate(w.start)
	if err != nil {
		return budget.Range{}, fmt.Errorf("invalid start date: %w", err)
	}
	end := start.Add(budget.DefaultHorizonDays)
	if w.end != "" {
		end, err = budget.ParseDate(w.end)
		if err != nil {
			return budget.Range{}, fmt.Errorf("invalid end date: %w", err)
		}
	}
	return budget.NewRange(start, end)
}

// Budget reads the schedule file and builds the budget for the window flags.
func (w *windowFlags) Budget() (*budget.Budget, error) {
	r, err := w.Window()
	if err != nil {
		return nil, err
	}
	schedule, err := DecodeScheduleFile()
	if err != nil {
		return nil, err
	}
	return budget.NewBudget(schedule, r, budget.M(w.initial, w.currency))
}
