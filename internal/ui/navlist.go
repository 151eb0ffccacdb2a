package ui

import "strings"

const noHighlight = -1

// List is a keyboard-navigable list with a single optional highlight.
// Movement wraps at both ends. Confirm reports the highlighted item and
// leaves the action to the caller.
type List[T any] struct {
	items     []T
	highlight int
}

func NewList[T any](items []T) List[T] {
	return List[T]{items: items, highlight: noHighlight}
}

func (l List[T]) Items() []T { return l.items }
func (l List[T]) Len() int   { return len(l.items) }

func (l List[T]) Highlighted() (int, bool) {
	if l.highlight == noHighlight {
		return 0, false
	}
	return l.highlight, true
}

func (l *List[T]) MoveUp() {
	n := len(l.items)
	if n == 0 {
		return
	}
	if l.highlight == noHighlight || l.highlight == 0 {
		l.highlight = n - 1
		return
	}
	l.highlight--
}

func (l *List[T]) MoveDown() {
	n := len(l.items)
	if n == 0 {
		return
	}
	if l.highlight == noHighlight || l.highlight == n-1 {
		l.highlight = 0
		return
	}
	l.highlight++
}

func (l List[T]) Confirm() (T, int, bool) {
	var zero T
	if l.highlight == noHighlight {
		return zero, 0, false
	}
	return l.items[l.highlight], l.highlight, true
}

func (l *List[T]) Reset() {
	l.highlight = noHighlight
}

// SetItems swaps the underlying items. A highlight that still points at a
// row is kept; one that falls off the end is cleared.
func (l *List[T]) SetItems(items []T) {
	l.items = items
	if l.highlight >= len(items) {
		l.highlight = noHighlight
	}
}

func (l List[T]) View(render func(item T, highlighted bool) string) string {
	rows := make([]string, len(l.items))
	for i, item := range l.items {
		rows[i] = render(item, i == l.highlight)
	}
	return strings.Join(rows, "\n")
}
