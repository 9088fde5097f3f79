package budget

import (
	"fmt"
	"iter"
)

// InitialAmountName is the name of the synthetic row carrying the budget's
// initial amount.
const InitialAmountName = "Initial Amount"

// DefaultHorizonDays is the horizon used when the caller gives no end date.
const DefaultHorizonDays = 90

// Row is one line of a budget table: an occurrence (or the initial amount)
// with the running balance after it.
type Row struct {
	On      Date
	Name    string
	Amount  Money
	Balance Money
}

// Budget is a schedule expanded over a window into a chronological transaction
// table with running balances. It is fully derived at construction and never
// mutated afterwards, so independent budgets can be built concurrently from
// the same schedule.
type Budget struct {
	window  Range
	initial Money
	rows    []Row
}

// NewBudget expands the schedule over r and builds the transaction table. The
// initial amount becomes a synthetic first row at r.From, sorted before any
// same-day occurrence, and running balances are prefix sums over the sorted
// rows.
//
// It fails with ErrInvalidRange when r.From is not before r.To, and with
// ErrEmptySchedule when no item produces any occurrence in the window: a
// budget with only an initial amount is rejected, matching the behavior this
// tool has always had. Callers wanting a transaction-free budget must handle
// that case themselves.
func NewBudget(s *Schedule, r Range, initial Money) (*Budget, error) {
	if s == nil {
		return nil, fmt.Errorf("budget needs a schedule")
	}

	occurrences, err := s.Expand(r)
	if err != nil {
		return nil, err
	}
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrEmptySchedule, r)
	}

	// Occurrences are sorted and all fall on or after r.From, so prepending
	// the initial row keeps the table sorted with the initial row first among
	// same-day rows.
	rows := make([]Row, 0, len(occurrences)+1)
	rows = append(rows, Row{On: r.From, Name: InitialAmountName, Amount: initial})
	for _, o := range occurrences {
		rows = append(rows, Row{On: o.On, Name: o.Name, Amount: o.Amount})
	}

	var balance Money
	for i := range rows {
		balance = balance.Add(rows[i].Amount)
		rows[i].Balance = balance
	}

	return &Budget{window: r, initial: initial, rows: rows}, nil
}

// Window returns the budget's date window.
func (b *Budget) Window() Range { return b.window }

// Initial returns the budget's initial amount.
func (b *Budget) Initial() Money { return b.initial }

// Rows returns an iterator over the budget table in chronological order.
func (b *Budget) Rows() iter.Seq[Row] {
	return func(yield func(Row) bool) {
		for _, row := range b.rows {
			if !yield(row) {
				return
			}
		}
	}
}

// BalanceOn returns the balance on a given date: the running balance of the
// last row on or before it. On the window's start date it returns the initial
// amount exactly, before any same-day transaction. It fails with ErrOutOfRange
// outside the window.
func (b *Budget) BalanceOn(on Date) (Money, error) {
	if !b.window.Contains(on) {
		return Money{}, fmt.Errorf("%w: %s not in %s", ErrOutOfRange, on, b.window)
	}
	if on == b.window.From {
		return b.initial, nil
	}
	balance := b.initial
	for _, row := range b.rows {
		if row.On.After(on) {
			break
		}
		balance = row.Balance
	}
	return balance, nil
}

// FinalBalance returns the running balance of the last row, the balance at the
// end of the window.
func (b *Budget) FinalBalance() Money {
	return b.rows[len(b.rows)-1].Balance
}

func (b *Budget) String() string {
	return fmt.Sprintf("Budget(%s, initial=%s, %d rows)", b.window, b.initial, len(b.rows))
}
