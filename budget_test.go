package budget

import (
	"errors"
	"testing"
)

// complexSchedule is the paycheck/rent/groceries scenario used across budget tests.
func complexSchedule() *Schedule {
	return NewSchedule(
		item("Paycheck", EUR(1000), "2016-01-01", "monthly"),
		item("Rent", EUR(-500), "2016-01-05", "monthly"),
		item("Groceries", EUR(-100), "2015-12-15", "2 weeks"),
		item("Christmas Gifts", EUR(-500), "2015-12-20", ""),
	)
}

func mustRange(t *testing.T, from, to string) Range {
	t.Helper()
	r, err := NewRange(day(from), day(to))
	if err != nil {
		t.Fatalf("NewRange(%s, %s) error = %v", from, to, err)
	}
	return r
}

func TestNewBudget_PrefixSums(t *testing.T) {
	b, err := NewBudget(complexSchedule(), mustRange(t, "2015-12-15", "2016-03-02"), EUR(1000))
	if err != nil {
		t.Fatalf("NewBudget() error = %v", err)
	}

	sum := NO(0)
	i := 0
	var prev Date
	for row := range b.Rows() {
		sum = sum.Add(row.Amount)
		if !row.Balance.Equal(sum) {
			t.Errorf("row %d (%s %s): balance = %s, want running sum %s", i, row.On, row.Name, row.Balance, sum)
		}
		if i > 0 && row.On.Before(prev) {
			t.Errorf("row %d on %v is before its predecessor %v", i, row.On, prev)
		}
		prev = row.On
		i++
	}
	if i == 0 {
		t.Fatal("Rows() yielded nothing")
	}
	if !b.FinalBalance().Equal(sum) {
		t.Errorf("FinalBalance() = %s, want %s", b.FinalBalance(), sum)
	}
}

func TestNewBudget_InitialRowFirst(t *testing.T) {
	// An item on the start date must sort after the initial row.
	s := NewSchedule(item("Groceries", EUR(-100), "2015-12-15", "2 weeks"))
	b, err := NewBudget(s, mustRange(t, "2015-12-15", "2016-01-15"), EUR(1000))
	if err != nil {
		t.Fatalf("NewBudget() error = %v", err)
	}
	for row := range b.Rows() {
		if row.Name != InitialAmountName {
			t.Errorf("first row is %q, want %q", row.Name, InitialAmountName)
		}
		if row.On != day("2015-12-15") || !row.Balance.Equal(EUR(1000)) {
			t.Errorf("initial row = %+v, want on 2015-12-15 with balance %s", row, EUR(1000))
		}
		break
	}
}

func TestBudget_BalanceOn(t *testing.T) {
	b, err := NewBudget(complexSchedule(), mustRange(t, "2015-12-15", "2016-03-02"), EUR(1000))
	if err != nil {
		t.Fatalf("NewBudget() error = %v", err)
	}

	tests := []struct {
		on   string
		want Money
	}{
		// Start-of-window balance ignores the same-day groceries.
		{"2015-12-15", EUR(1000)},
		{"2015-12-16", EUR(900)},
		{"2015-12-20", EUR(400)},
		{"2015-12-31", EUR(300)},
		{"2016-01-01", EUR(1300)},
		{"2016-01-05", EUR(800)},
		{"2016-01-27", EUR(600)},
		{"2016-02-05", EUR(1100)},
		{"2016-03-01", EUR(1900)},
		{"2016-03-02", EUR(1900)},
	}
	for _, tt := range tests {
		t.Run(tt.on, func(t *testing.T) {
			got, err := b.BalanceOn(day(tt.on))
			if err != nil {
				t.Fatalf("BalanceOn(%s) error = %v", tt.on, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("BalanceOn(%s) = %s, want %s", tt.on, got, tt.want)
			}
		})
	}

	if got := b.FinalBalance(); !got.Equal(EUR(1900)) {
		t.Errorf("FinalBalance() = %s, want %s", got, EUR(1900))
	}
}

func TestBudget_BalanceOn_SpecScenario(t *testing.T) {
	// Paycheck and rent only, as in the reference scenario.
	s := NewSchedule(
		item("Paycheck", EUR(1000), "2016-01-01", "monthly"),
		item("Rent", EUR(-500), "2016-01-05", "monthly"),
	)
	b, err := NewBudget(s, mustRange(t, "2015-12-15", "2016-03-02"), EUR(1000))
	if err != nil {
		t.Fatalf("NewBudget() error = %v", err)
	}
	tests := []struct {
		on   string
		want Money
	}{
		{"2015-12-15", EUR(1000)},
		{"2016-01-01", EUR(2000)},
		{"2016-01-05", EUR(1500)},
	}
	for _, tt := range tests {
		got, err := b.BalanceOn(day(tt.on))
		if err != nil {
			t.Fatalf("BalanceOn(%s) error = %v", tt.on, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("BalanceOn(%s) = %s, want %s", tt.on, got, tt.want)
		}
	}
	if got := b.FinalBalance(); !got.Equal(EUR(2500)) {
		t.Errorf("FinalBalance() = %s, want %s", got, EUR(2500))
	}
}

func TestBudget_BalanceOn_OutOfRange(t *testing.T) {
	b, err := NewBudget(complexSchedule(), mustRange(t, "2015-12-15", "2016-03-02"), EUR(1000))
	if err != nil {
		t.Fatalf("NewBudget() error = %v", err)
	}
	for _, on := range []string{"2015-12-14", "2016-03-03", "2020-01-01"} {
		if _, err := b.BalanceOn(day(on)); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("BalanceOn(%s) error = %v, want ErrOutOfRange", on, err)
		}
	}
}

func TestNewBudget_EmptySchedule(t *testing.T) {
	// A schedule with no occurrence in the window is rejected, even with an
	// initial amount set.
	s := NewSchedule(item("Old bill", EUR(-10), "2014-01-01", ""))
	if _, err := NewBudget(s, mustRange(t, "2016-01-01", "2016-02-01"), EUR(1000)); !errors.Is(err, ErrEmptySchedule) {
		t.Errorf("NewBudget(no occurrences) error = %v, want ErrEmptySchedule", err)
	}

	empty := NewSchedule()
	if _, err := NewBudget(empty, mustRange(t, "2016-01-01", "2016-02-01"), EUR(1000)); !errors.Is(err, ErrEmptySchedule) {
		t.Errorf("NewBudget(empty schedule) error = %v, want ErrEmptySchedule", err)
	}

	if _, err := NewBudget(nil, mustRange(t, "2016-01-01", "2016-02-01"), EUR(1000)); err == nil {
		t.Error("NewBudget(nil schedule) error = nil, want error")
	}
}
