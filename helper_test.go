package budget

// EUR is a helper for tests to create euro money from a const.
func EUR(v float64) Money { return M(v, "EUR") }

// NO is a helper for tests to create money with no currency set.
func NO(v float64) Money { return M(v, "") }

// day is a helper for tests to build a date from its ISO form.
func day(s string) Date { return MustParseDate(s) }

// item is a helper for tests to build an item, panicking on invalid input.
func item(name string, amount Money, on string, every string) Item {
	r, err := ParseRecurrence(every)
	if err != nil {
		panic(err.Error())
	}
	it, err := NewItem(name, amount, day(on), r)
	if err != nil {
		panic(err.Error())
	}
	return it
}
