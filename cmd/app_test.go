package cmd

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

// useTempScheduleFile points the app schedule file at a temp location for the
// duration of one test.
func useTempScheduleFile(t *testing.T) {
	t.Helper()
	old := *scheduleFile
	*scheduleFile = filepath.Join(t.TempDir(), "budget.jsonl")
	t.Cleanup(func() { *scheduleFile = old })
}

func TestDecodeScheduleFile_Missing(t *testing.T) {
	useTempScheduleFile(t)

	s, err := DecodeScheduleFile()
	if err != nil {
		t.Fatalf("DecodeScheduleFile() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("missing file decoded as %d items, want 0", s.Len())
	}
}

func TestAppendItems_RoundTrip(t *testing.T) {
	useTempScheduleFile(t)

	rent, err := budget.NewItem("Rent", budget.M(-500, "EUR"), budget.MustParseDate("2016-01-05"), budget.Every(1, budget.Month))
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}
	gift, err := budget.NewItem("Gift", budget.M(-50, "EUR"), budget.MustParseDate("2016-02-14"), budget.OneTime)
	if err != nil {
		t.Fatalf("NewItem() error = %v", err)
	}

	if got := AppendItems(rent); got != subcommands.ExitSuccess {
		t.Fatalf("AppendItems(rent) = %v", got)
	}
	if got := AppendItems(gift); got != subcommands.ExitSuccess {
		t.Fatalf("AppendItems(gift) = %v", got)
	}

	s, err := DecodeScheduleFile()
	if err != nil {
		t.Fatalf("DecodeScheduleFile() error = %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("DecodeScheduleFile() = %d items, want 2", s.Len())
	}
	var items []budget.Item
	for it := range s.Items() {
		items = append(items, it)
	}
	if items[0].Name != "Rent" || items[1].Name != "Gift" {
		t.Errorf("items out of append order: %v", items)
	}
	if items[0].Every != budget.Every(1, budget.Month) || items[1].Every != budget.OneTime {
		t.Errorf("recurrences lost in round trip: %v", items)
	}
}

func TestWindowFlags(t *testing.T) {
	w := windowFlags{start: "2016-01-01"}
	r, err := w.Window()
	if err != nil {
		t.Fatalf("Window() error = %v", err)
	}
	if r.From != budget.MustParseDate("2016-01-01") {
		t.Errorf("From = %v, want 2016-01-01", r.From)
	}
	if want := r.From.Add(budget.DefaultHorizonDays); r.To != want {
		t.Errorf("To = %v, want default horizon %v", r.To, want)
	}

	w = windowFlags{start: "2016-01-01", end: "2016-03-02"}
	r, err = w.Window()
	if err != nil {
		t.Fatalf("Window() error = %v", err)
	}
	if r.To != budget.MustParseDate("2016-03-02") {
		t.Errorf("To = %v, want 2016-03-02", r.To)
	}

	w = windowFlags{start: "2016-03-02", end: "2016-01-01"}
	if _, err := w.Window(); !errors.Is(err, budget.ErrInvalidRange) {
		t.Errorf("Window(reversed) error = %v, want ErrInvalidRange", err)
	}

	w = windowFlags{start: "not-a-date"}
	if _, err := w.Window(); err == nil {
		t.Error("Window(bad start) error = nil, want error")
	}
}
