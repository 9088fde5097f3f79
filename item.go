package budget

import (
	"fmt"
	"strings"
)

// Item is one cash-flow line of a schedule: a named amount anchored on a date,
// with an optional recurrence. Positive amounts are inflows, negative amounts
// outflows. Items are immutable once created.
type Item struct {
	Name   string
	Amount Money
	On     Date // anchor date
	Every  Recurrence
}

// NewItem creates an item. The name must be non-empty and the anchor date set.
func NewItem(name string, amount Money, on Date, every Recurrence) (Item, error) {
	if strings.TrimSpace(name) == "" {
		return Item{}, fmt.Errorf("item name must not be empty")
	}
	if on.IsZero() {
		return Item{}, fmt.Errorf("item %q must have an anchor date", name)
	}
	return Item{Name: name, Amount: amount, On: on, Every: every}, nil
}

// NextOn returns the first occurrence of the item on or after lower, or
// ok=false for a one-time item whose anchor has already passed.
func (it Item) NextOn(lower Date) (Date, bool) {
	return it.Every.NextOnOrAfter(it.On, lower)
}

func (it Item) String() string {
	if it.Every.IsRecurring() {
		return fmt.Sprintf("%s %s on %s, %s", it.Name, it.Amount, it.On, it.Every)
	}
	return fmt.Sprintf("%s %s on %s", it.Name, it.Amount, it.On)
}
