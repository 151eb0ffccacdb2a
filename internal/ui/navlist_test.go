package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func highlighted[T any](l List[T]) int {
	i, ok := l.Highlighted()
	if !ok {
		return noHighlight
	}
	return i
}

func TestList_MoveFromUnhighlighted(t *testing.T) {
	up := NewList([]string{"a", "b", "c"})
	up.MoveUp()
	assert.Equal(t, 2, highlighted(up))

	down := NewList([]string{"a", "b", "c"})
	down.MoveDown()
	assert.Equal(t, 0, highlighted(down))
}

func TestList_Wraps(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	l.MoveDown() // 0
	l.MoveUp()
	assert.Equal(t, 2, highlighted(l), "up from first wraps to last")

	l.MoveDown()
	assert.Equal(t, 0, highlighted(l), "down from last wraps to first")

	l.MoveDown()
	l.MoveDown()
	l.MoveUp()
	assert.Equal(t, 1, highlighted(l))
}

func TestList_EmptyIsNoop(t *testing.T) {
	l := NewList[string](nil)
	l.MoveUp()
	l.MoveDown()
	_, ok := l.Highlighted()
	assert.False(t, ok)

	_, _, ok = l.Confirm()
	assert.False(t, ok)
}

func TestList_Confirm(t *testing.T) {
	l := NewList([]string{"a", "b"})
	_, _, ok := l.Confirm()
	assert.False(t, ok, "confirm without highlight is a no-op")

	l.MoveUp()
	item, idx, ok := l.Confirm()
	assert.True(t, ok)
	assert.Equal(t, "b", item)
	assert.Equal(t, 1, idx)
}

func TestList_SetItems(t *testing.T) {
	l := NewList([]string{"a", "b", "c"})
	l.MoveDown()
	l.MoveDown() // 1

	l.SetItems([]string{"x", "y"})
	assert.Equal(t, 1, highlighted(l), "in-range highlight is kept")

	l.SetItems([]string{"x"})
	assert.Equal(t, noHighlight, highlighted(l), "out-of-range highlight is cleared")

	l.MoveDown()
	l.Reset()
	assert.Equal(t, noHighlight, highlighted(l))
}

func TestList_View(t *testing.T) {
	l := NewList([]string{"a", "b"})
	l.MoveDown()
	out := l.View(func(s string, hl bool) string {
		if hl {
			return "> " + s
		}
		return "  " + s
	})
	assert.Equal(t, "> a\n  b", out)
	assert.Equal(t, 2, len(strings.Split(out, "\n")))
}
