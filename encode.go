package budget

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file handles the schedule file format: a JSONL file, one item per line,
// human readable and git friendly.

// jitem is the json representation of one schedule line.
type jitem struct {
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency,omitempty"`
	On       Date            `json:"on"`
	Every    string          `json:"every,omitempty"`
}

// DecodeSchedule reads a schedule from a JSONL stream, one item per line.
// Empty lines are skipped. Items keep the order they have in the file.
func DecodeSchedule(r io.Reader) (*Schedule, error) {
	s := NewSchedule()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Text()
		if strings.TrimSpace(txt) == "" {
			continue
		}

		var ji jitem
		if err := json.Unmarshal([]byte(txt), &ji); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", line, txt, err)
		}
		every, err := ParseRecurrence(ji.Every)
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		item, err := NewItem(ji.Name, M(ji.Amount, ji.Currency), ji.On, every)
		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", line, err)
		}
		s.Append(item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read schedule: %w", err)
	}
	return s, nil
}

// EncodeItem appends one item to w as a single JSON line.
func EncodeItem(w io.Writer, it Item) error {
	ji := jitem{
		Name:     it.Name,
		Amount:   it.Amount.Decimal(),
		Currency: it.Amount.Currency(),
		On:       it.On,
		Every:    it.Every.String(),
	}
	b, err := json.Marshal(ji)
	if err != nil {
		return fmt.Errorf("cannot encode item %q: %w", it.Name, err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", b); err != nil {
		return err
	}
	return nil
}

// EncodeSchedule writes the whole schedule to w in the schedule file format,
// in insertion order.
func EncodeSchedule(w io.Writer, s *Schedule) error {
	for it := range s.Items() {
		if err := EncodeItem(w, it); err != nil {
			return err
		}
	}
	return nil
}
