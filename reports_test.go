package budget

import "testing"

func TestNewSummary(t *testing.T) {
	s := NewSchedule(
		item("Paycheck", EUR(1000), "2016-01-01", "monthly"),
		item("Rent", EUR(-500), "2016-01-05", "monthly"),
	)
	b, err := NewBudget(s, mustRange(t, "2015-12-15", "2016-03-02"), EUR(1000))
	if err != nil {
		t.Fatalf("NewBudget() error = %v", err)
	}

	summary := NewSummary(b)
	if summary.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", summary.Currency)
	}
	if !summary.Initial.Equal(EUR(1000)) || !summary.Final.Equal(EUR(2500)) {
		t.Errorf("Initial/Final = %s/%s, want %s/%s", summary.Initial, summary.Final, EUR(1000), EUR(2500))
	}

	want := []struct {
		from, to          string
		in, out, closing  float64
	}{
		{"2015-12-15", "2015-12-31", 0, 0, 1000},
		{"2016-01-01", "2016-01-31", 1000, -500, 1500},
		{"2016-02-01", "2016-02-29", 1000, -500, 2000},
		{"2016-03-01", "2016-03-02", 1000, 0, 2500},
	}
	if len(summary.Months) != len(want) {
		t.Fatalf("got %d months, want %d", len(summary.Months), len(want))
	}
	for i, w := range want {
		m := summary.Months[i]
		if m.Month.From != day(w.from) || m.Month.To != day(w.to) {
			t.Errorf("month %d range = %v, want %s to %s", i, m.Month, w.from, w.to)
		}
		if !m.Inflows.Equal(EUR(w.in)) {
			t.Errorf("month %d inflows = %s, want %s", i, m.Inflows, EUR(w.in))
		}
		if !m.Outflows.Equal(EUR(w.out)) {
			t.Errorf("month %d outflows = %s, want %s", i, m.Outflows, EUR(w.out))
		}
		if !m.Net.Equal(EUR(w.in + w.out)) {
			t.Errorf("month %d net = %s, want %s", i, m.Net, EUR(w.in+w.out))
		}
		if !m.Closing.Equal(EUR(w.closing)) {
			t.Errorf("month %d closing = %s, want %s", i, m.Closing, EUR(w.closing))
		}
	}
}
