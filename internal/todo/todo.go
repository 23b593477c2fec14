package todo

import "strings"

// Item is one task on the list.
type Item struct {
	ID        int
	Title     string
	Completed bool
}

// Filter selects which items the list shows.
type Filter string

const (
	FilterAll       Filter = ""
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// ParseFilter accepts a filter name or a route such as "#/active".
func ParseFilter(s string) (Filter, bool) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	s = strings.Trim(s, "/")
	switch Filter(strings.ToLower(s)) {
	case FilterAll, "all":
		return FilterAll, true
	case FilterActive:
		return FilterActive, true
	case FilterCompleted:
		return FilterCompleted, true
	}
	return FilterAll, false
}

// Matches reports whether item is visible under the filter.
func (f Filter) Matches(item Item) bool {
	switch f {
	case FilterActive:
		return !item.Completed
	case FilterCompleted:
		return item.Completed
	default:
		return true
	}
}

// Apply returns the items visible under the filter, preserving order.
func (f Filter) Apply(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if f.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

// String returns the filter name, "all" for the unfiltered view.
func (f Filter) String() string {
	if f == FilterAll {
		return "all"
	}
	return string(f)
}

// Counts summarises a list.
type Counts struct {
	Total     int
	Active    int
	Completed int
}
