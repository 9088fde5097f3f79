package budget

import (
	"fmt"
	"iter"
	"slices"
)

// Schedule holds the items of a budget, in the order they were added. The
// order matters: occurrences sharing a date keep the items' insertion order.
type Schedule struct {
	items []Item
}

// NewSchedule creates a schedule from the given items.
func NewSchedule(items ...Item) *Schedule {
	return &Schedule{items: slices.Clone(items)}
}

// Append adds items to the end of the schedule.
func (s *Schedule) Append(items ...Item) {
	s.items = append(s.items, items...)
}

// Len returns the number of items in the schedule.
func (s *Schedule) Len() int { return len(s.items) }

// Items returns an iterator over the items in insertion order.
func (s *Schedule) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		for _, it := range s.items {
			if !yield(it) {
				return
			}
		}
	}
}

// Occurrence is one concrete instance of an item within a window.
type Occurrence struct {
	On     Date
	Name   string
	Amount Money
}

// Expand computes every occurrence of every item with a date in r, boundaries
// included, sorted by date ascending. Same-day occurrences keep the items'
// insertion order. An empty result is valid, not an error.
//
// Expand is a pure function: identical inputs yield identical output.
func (s *Schedule) Expand(r Range) ([]Occurrence, error) {
	if !r.From.Before(r.To) {
		return nil, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidRange, r.From, r.To)
	}

	var occurrences []Occurrence
	for _, it := range s.items {
		on, ok := it.NextOn(r.From)
		for ok && !on.After(r.To) {
			occurrences = append(occurrences, Occurrence{On: on, Name: it.Name, Amount: it.Amount})
			// The next search starts the day after, so a recurring item cannot
			// emit the same date twice.
			on, ok = it.NextOn(on.Add(1))
		}
	}

	slices.SortStableFunc(occurrences, func(a, b Occurrence) int {
		switch {
		case a.On.Before(b.On):
			return -1
		case a.On.After(b.On):
			return 1
		default:
			return 0
		}
	})
	return occurrences, nil
}
