package list

import (
	"fmt"
	"slices"
	"strings"
)

// List is an ordered sequence of items addressed by position or by an
// integer id. Items are usually pointers, so views created by Filter or
// SortedBy share them with the list they came from.
type List[T any] struct {
	items []T
	id    func(T) int
}

// New creates an empty list. id extracts the identifier used by FindByID
// and RemoveByID; it may be nil for lists that are only used positionally.
func New[T any](id func(T) int) *List[T] {
	return &List[T]{id: id}
}

// Append inserts item at the end of the list
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
}

// Get returns the item at position i. -1 addresses the last item.
// Any other negative index, an index past the end or an empty list
// reports false.
func (l *List[T]) Get(i int) (T, bool) {
	var zero T
	if i == -1 {
		i = len(l.items) - 1
	}
	if i < 0 || i >= len(l.items) {
		return zero, false
	}
	return l.items[i], true
}

func (l *List[T]) indexOf(id int) int {
	if l.id == nil {
		return -1
	}
	for i, item := range l.items {
		if l.id(item) == id {
			return i
		}
	}
	return -1
}

// FindByID returns the first item with the given id
func (l *List[T]) FindByID(id int) (T, bool) {
	var zero T
	i := l.indexOf(id)
	if i < 0 {
		return zero, false
	}
	return l.items[i], true
}

// RemoveByID unlinks the first item with the given id and hands it back to
// the caller. The list is left untouched when no item matches.
func (l *List[T]) RemoveByID(id int) (T, bool) {
	var zero T
	i := l.indexOf(id)
	if i < 0 {
		return zero, false
	}
	item := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return item, true
}

// Index returns the position of the first item matching pred, or -1
func (l *List[T]) Index(pred func(T) bool) int {
	return slices.IndexFunc(l.items, pred)
}

// Filter returns a new list with every item matching pred, in order.
// The result is a view: it references the same items and must not be used
// to manage their lifetime.
func (l *List[T]) Filter(pred func(T) bool) *List[T] {
	out := New(l.id)
	for _, item := range l.items {
		if pred(item) {
			out.items = append(out.items, item)
		}
	}
	return out
}

// SortedBy returns a view of the list ordered by cmp. Equal items keep
// their relative order.
func (l *List[T]) SortedBy(cmp func(a, b T) int) *List[T] {
	out := New(l.id)
	out.items = slices.Clone(l.items)
	slices.SortStableFunc(out.items, cmp)
	return out
}

// String renders every item with format and joins them with ", ".
// A nil format falls back to fmt.Sprint.
func (l *List[T]) String(format func(T) string) string {
	if format == nil {
		format = func(item T) string { return fmt.Sprint(item) }
	}
	parts := make([]string, len(l.items))
	for i, item := range l.items {
		parts[i] = format(item)
	}
	return strings.Join(parts, ", ")
}

// Items returns a copy of the underlying slice
func (l *List[T]) Items() []T {
	return slices.Clone(l.items)
}

func (l *List[T]) Len() int {
	return len(l.items)
}
