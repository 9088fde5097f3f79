package budget

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Unit is the calendar unit of a recurrence interval.
type Unit int

const (
	Day Unit = iota
	Week
	Month
	Year
)

// Name returns the singular noun for the unit.
func (u Unit) Name() string {
	switch u {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	default:
		panic("unknown unit")
	}
}

// Recurrence is an item's recurrence policy: either one-time (the zero value)
// or a strictly positive number of calendar units.
type Recurrence struct {
	every int // 0 means one-time
	unit  Unit
}

// OneTime is the recurrence of an item that occurs exactly once, on its anchor date.
var OneTime = Recurrence{}

// Every returns a recurrence of n units. It panics if n < 1; typed construction
// happens after boundary validation.
func Every(n int, u Unit) Recurrence {
	if n < 1 {
		panic(fmt.Sprintf("recurrence interval must be positive, got %d", n))
	}
	return Recurrence{every: n, unit: u}
}

// IsRecurring returns false for a one-time recurrence.
func (r Recurrence) IsRecurring() bool { return r.every > 0 }

// String returns the canonical text form: "" for one-time, the adverb form for
// single intervals ("monthly"), and "N units" otherwise ("2 weeks"). The result
// round-trips through ParseRecurrence.
func (r Recurrence) String() string {
	switch {
	case r.every == 0:
		return ""
	case r.every == 1:
		switch r.unit {
		case Day:
			return "daily"
		case Week:
			return "weekly"
		case Month:
			return "monthly"
		case Year:
			return "yearly"
		}
	}
	return fmt.Sprintf("%d %ss", r.every, r.unit.Name())
}

var (
	adverbRE   = regexp.MustCompile(`^(daily|weekly|monthly|yearly)$`)
	intervalRE = regexp.MustCompile(`^(\d+)\s+(day|week|month|year)s?$`)
)

// ParseRecurrence parses a recurrence pattern. It accepts, case-insensitively:
// "daily", "weekly", "monthly", "yearly", and "N days" / "N weeks" / "N months" /
// "N years" with N a positive integer ("1 day" included). The empty string is
// the one-time recurrence. Anything else fails with ErrInvalidPattern.
func ParseRecurrence(text string) (Recurrence, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	if s == "" {
		return OneTime, nil
	}

	if m := adverbRE.FindStringSubmatch(s); m != nil {
		switch m[1] {
		case "daily":
			return Every(1, Day), nil
		case "weekly":
			return Every(1, Week), nil
		case "monthly":
			return Every(1, Month), nil
		case "yearly":
			return Every(1, Year), nil
		}
	}

	if m := intervalRE.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return OneTime, fmt.Errorf("%w: %q", ErrInvalidPattern, text)
		}
		switch m[2] {
		case "day":
			return Every(n, Day), nil
		case "week":
			return Every(n, Week), nil
		case "month":
			return Every(n, Month), nil
		case "year":
			return Every(n, Year), nil
		}
	}

	return OneTime, fmt.Errorf("%w: %q (want daily, weekly, monthly, yearly, or \"N days/weeks/months/years\")", ErrInvalidPattern, text)
}

// step returns d advanced by one interval, calendar-aware: month and year steps
// clamp the day to the last valid day of the target month. A step always
// strictly advances the date.
func (r Recurrence) step(d Date) Date {
	switch r.unit {
	case Day:
		return d.Add(r.every)
	case Week:
		return d.Add(r.every * 7)
	case Month:
		return d.AddMonths(r.every)
	case Year:
		return d.AddYears(r.every)
	default:
		panic("unknown unit")
	}
}

// NextOnOrAfter returns the first occurrence of a rule anchored on anchor that
// falls on or after lower. For a one-time recurrence it returns the anchor
// itself, or ok=false when the anchor has already passed. An anchor on or after
// lower is returned unchanged.
func (r Recurrence) NextOnOrAfter(anchor, lower Date) (next Date, ok bool) {
	if !r.IsRecurring() {
		if anchor.Before(lower) {
			return Date{}, false
		}
		return anchor, true
	}
	next = anchor
	for next.Before(lower) {
		next = r.step(next)
	}
	return next, true
}

// MarshalJSON encodes the recurrence as its canonical string form.
func (r Recurrence) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON decodes a recurrence from its string form.
func (r *Recurrence) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseRecurrence(str)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

var _ json.Marshaler = Recurrence{}
var _ json.Unmarshaler = (*Recurrence)(nil)
