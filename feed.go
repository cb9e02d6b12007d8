package newsfeed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Group is a category and the items filed under it.
type Group struct {
	Category string
	Items    []Item
}

// Feed maps category names to their items. Categories keep the order in
// which they were first seen and items keep document order.
//
// A Feed is built by Aggregate and is read-only afterwards.
type Feed struct {
	categories []string
	groups     map[string][]Item
}

// Aggregate folds entries into a Feed. The sequence is consumed exactly once.
// Category names are used verbatim; no sorting, merging or de-duplication
// takes place.
func Aggregate(entries iter.Seq[Entry]) *Feed {
	f := &Feed{}
	for e := range entries {
		f.add(e.Category, e.Item)
	}
	return f
}

func (f *Feed) add(category string, item Item) {
	if f.groups == nil {
		f.groups = make(map[string][]Item)
	}
	if _, ok := f.groups[category]; !ok {
		f.categories = append(f.categories, category)
	}
	f.groups[category] = append(f.groups[category], item)
}

// Len returns the number of categories.
func (f *Feed) Len() int {
	return len(f.categories)
}

// Total returns the number of items across all categories.
func (f *Feed) Total() int {
	n := 0
	for _, items := range f.groups {
		n += len(items)
	}
	return n
}

// Categories returns category names in first-seen order.
func (f *Feed) Categories() []string {
	return slices.Clone(f.categories)
}

// Items returns the items of a category, or nil if it is unknown.
func (f *Feed) Items(category string) []Item {
	return slices.Clone(f.groups[category])
}

// Groups returns every category with its items in feed order.
func (f *Feed) Groups() []Group {
	groups := make([]Group, 0, len(f.categories))
	for category, items := range f.All() {
		groups = append(groups, Group{Category: category, Items: items})
	}
	return groups
}

// All iterates categories in order with a copy of their items.
func (f *Feed) All() iter.Seq2[string, []Item] {
	return func(yield func(string, []Item) bool) {
		for _, c := range f.categories {
			if !yield(c, slices.Clone(f.groups[c])) {
				return
			}
		}
	}
}

// MarshalJSON encodes the feed as a JSON object whose keys follow feed order.
// HTML characters are left unescaped.
func (f *Feed) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range f.categories {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalUnescaped(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		items, err := marshalUnescaped(f.groups[c])
		if err != nil {
			return nil, err
		}
		buf.Write(items)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of category arrays, keeping key order.
// Repeated keys append to the existing category.
func (f *Feed) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("feed: expected JSON object, got %v", tok)
	}

	*f = Feed{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category, ok := tok.(string)
		if !ok {
			return fmt.Errorf("feed: expected category name, got %v", tok)
		}

		var items []Item
		if err := dec.Decode(&items); err != nil {
			return fmt.Errorf("feed: category %q: %w", category, err)
		}
		if len(items) == 0 {
			// Keep the key so empty arrays survive a round trip.
			if f.groups == nil {
				f.groups = make(map[string][]Item)
			}
			if _, ok := f.groups[category]; !ok {
				f.categories = append(f.categories, category)
				f.groups[category] = []Item{}
			}
			continue
		}
		for _, item := range items {
			f.add(category, item)
		}
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func marshalUnescaped(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
