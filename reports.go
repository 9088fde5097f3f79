package budget

// MonthSummary aggregates the budget activity of one calendar month (clipped
// to the budget window).
type MonthSummary struct {
	Month    Range
	Inflows  Money // sum of positive item amounts
	Outflows Money // sum of negative item amounts
	Net      Money
	Closing  Money // running balance after the last row of the month
}

// Summary is a per-month overview of a budget.
type Summary struct {
	Window   Range
	Currency string
	Initial  Money
	Final    Money
	Months   []MonthSummary
}

// NewSummary aggregates the budget's rows month by month. The initial amount
// row counts towards the closing balance but not towards inflows or outflows,
// which only measure item activity.
func NewSummary(b *Budget) *Summary {
	currency := b.Initial().Currency()
	s := &Summary{
		Window:   b.Window(),
		Currency: currency,
		Initial:  b.Initial(),
		Final:    b.FinalBalance(),
	}

	zero := M(0, currency)
	for month := range b.Window().Months() {
		ms := MonthSummary{Month: month, Inflows: zero, Outflows: zero, Closing: b.Initial()}
		for row := range b.Rows() {
			if row.On.Before(month.From) {
				ms.Closing = row.Balance
				continue
			}
			if row.On.After(month.To) {
				break
			}
			ms.Closing = row.Balance
			if row.Name == InitialAmountName {
				continue
			}
			if row.Amount.IsNegative() {
				ms.Outflows = ms.Outflows.Add(row.Amount)
			} else {
				ms.Inflows = ms.Inflows.Add(row.Amount)
			}
		}
		ms.Net = ms.Inflows.Add(ms.Outflows)
		s.Months = append(s.Months, ms)
	}
	return s
}
