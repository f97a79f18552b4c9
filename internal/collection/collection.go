// Package collection holds copy-on-write helpers over the planner tree.
// Nothing here mutates its input: every helper that changes a list returns a
// new slice and shares whatever it did not touch.
package collection

import "github.com/alexanderramin/plannerhub/internal/domain"

// Identified is anything carrying a string id.
type Identified interface {
	EntryID() string
}

// FindSection returns the section of item with the given title.
func FindSection(item domain.MenuItem, title string) (*domain.Section, bool) {
	i := SectionIndex(item.Content, title)
	if i < 0 {
		return nil, false
	}
	return &item.Content[i], true
}

// SectionIndex returns the index of the first section titled title, or -1.
func SectionIndex(content domain.Content, title string) int {
	for i := range content {
		if content[i].Title == title {
			return i
		}
	}
	return -1
}

// ItemIndex returns the index of the menu item with the given id, or -1.
func ItemIndex(items []domain.MenuItem, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// ReplaceSectionEntries returns a menu item list in which the entries of
// section title under item itemID are replaced. A miss returns items as is.
func ReplaceSectionEntries(items []domain.MenuItem, itemID, title string, entries []domain.Entry) []domain.MenuItem {
	out, _ := ReplaceSectionEntriesReport(items, itemID, title, entries)
	return out
}

// ReplaceSectionEntriesReport is ReplaceSectionEntries that also reports
// whether the item and section were found.
func ReplaceSectionEntriesReport(items []domain.MenuItem, itemID, title string, entries []domain.Entry) ([]domain.MenuItem, bool) {
	ii := ItemIndex(items, itemID)
	if ii < 0 {
		return items, false
	}
	si := SectionIndex(items[ii].Content, title)
	if si < 0 {
		return items, false
	}

	content := make(domain.Content, len(items[ii].Content))
	copy(content, items[ii].Content)
	content[si] = domain.Section{Title: title, Entries: entries}

	out := make([]domain.MenuItem, len(items))
	copy(out, items)
	out[ii].Content = content
	return out, true
}

// Append returns a new slice holding entries followed by e.
func Append[T any](entries []T, e T) []T {
	out := make([]T, len(entries), len(entries)+1)
	copy(out, entries)
	return append(out, e)
}

// FindByID returns the first element with the given id and its index.
func FindByID[T Identified](entries []T, id string) (T, int, bool) {
	for i, e := range entries {
		if e.EntryID() == id {
			return e, i, true
		}
	}
	var zero T
	return zero, -1, false
}

// MapByID returns a copy of entries with fn applied to every element whose id
// matches. found is false when nothing matched, in which case entries is
// returned unchanged.
func MapByID[T Identified](entries []T, id string, fn func(T) T) ([]T, bool) {
	found := false
	var out []T
	for i, e := range entries {
		if e.EntryID() != id {
			continue
		}
		if !found {
			out = make([]T, len(entries))
			copy(out, entries)
			found = true
		}
		out[i] = fn(e)
	}
	if !found {
		return entries, false
	}
	return out, true
}

// FilterByID returns a copy of entries without the elements whose id matches.
// removed is false when nothing matched, in which case entries is returned
// unchanged.
func FilterByID[T Identified](entries []T, id string) ([]T, bool) {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if e.EntryID() != id {
			out = append(out, e)
		}
	}
	if len(out) == len(entries) {
		return entries, false
	}
	return out, true
}
