package budget

import (
	"fmt"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
)

// This file imports items from third-party JSON exports. Every banking app has
// its own export shape, so the caller describes where the fields live with
// jsonpath expressions instead of us hardcoding one provider.

// ImportMapping locates items inside an arbitrary JSON document.
type ImportMapping struct {
	Items    string // jsonpath selecting the list of item objects, e.g. "$.transactions[*]"
	Name     string // jsonpath of the name within one item object, e.g. "$.label"
	Amount   string // jsonpath of the amount (number or numeric string)
	On       string // jsonpath of the anchor date (string, see ParseDate)
	Every    string // optional jsonpath of the recurrence text
	Currency string // currency code applied to every imported amount
}

// ImportItems extracts items from a decoded JSON document using the mapping.
// The document is the result of json.Unmarshal into an any.
func ImportItems(doc any, m ImportMapping) ([]Item, error) {
	jval, err := jsonpath.Get(m.Items, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select items with %q: %w", m.Items, err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		// jsonpath is never clear about whether it returns a list or a single
		// answer: a single object counts as a list of one.
		jlist = []any{jval}
	}

	items := make([]Item, 0, len(jlist))
	for i, jobj := range jlist {
		name, err := importString(jobj, m.Name)
		if err != nil {
			return nil, fmt.Errorf("item %d: name: %w", i, err)
		}
		amount, err := importAmount(jobj, m.Amount)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): amount: %w", i, name, err)
		}
		onStr, err := importString(jobj, m.On)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): date: %w", i, name, err)
		}
		on, err := ParseDate(onStr)
		if err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, name, err)
		}

		every := OneTime
		if m.Every != "" {
			// A missing recurrence field means a one-time item.
			if txt, err := importString(jobj, m.Every); err == nil {
				every, err = ParseRecurrence(txt)
				if err != nil {
					return nil, fmt.Errorf("item %d (%s): %w", i, name, err)
				}
			}
		}

		item, err := NewItem(name, M(amount, m.Currency), on, every)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

func importString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("cannot select %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	str, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("%q is not a string: %v", path, jval)
	}
	return str, nil
}

func importAmount(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot select %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("%q is not a number: %q", path, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%q is not a number: %v", path, jval)
	}
}
