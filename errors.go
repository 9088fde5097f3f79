package budget

import "errors"

// Sentinel errors returned by the engine. Callers match them with [errors.Is];
// returned errors usually wrap one of these with context.
var (
	// ErrInvalidPattern reports a recurrence text that matches none of the
	// accepted forms.
	ErrInvalidPattern = errors.New("invalid recurrence pattern")

	// ErrInvalidRange reports a window whose start is not strictly before its end.
	ErrInvalidRange = errors.New("invalid date range")

	// ErrEmptySchedule reports a schedule that produces no occurrence at all in
	// the budget window.
	ErrEmptySchedule = errors.New("no items in the schedule apply between start and end dates")

	// ErrOutOfRange reports a balance query outside the budget window.
	ErrOutOfRange = errors.New("date out of budget range")
)
