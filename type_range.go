package budget

import (
	"fmt"
	"iter"
)

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. It returns ErrInvalidRange if 'from' is
// not strictly before 'to'.
func NewRange(from, to Date) (Range, error) {
	if !from.Before(to) {
		return Range{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidRange, from, to)
	}
	return Range{From: from, To: to}, nil
}

// Contains returns true if date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns an iterator that yields each date within the range, inclusive.
func (r Range) Days() iter.Seq[Date] {
	return func(yield func(Date) bool) {
		for d := r.From; !d.After(r.To); d = d.Add(1) {
			if !yield(d) {
				return
			}
		}
	}
}

// Months returns an iterator that yields, in order, the sub-range of each
// calendar month that overlaps the range.
func (r Range) Months() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		for current := r.From; !current.After(r.To); {
			month := Range{From: current, To: current.EndOfMonth()}
			if month.To.After(r.To) {
				month.To = r.To
			}
			if !yield(month) {
				return
			}
			current = current.EndOfMonth().Add(1)
		}
	}
}

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }
