package ui

import "strings"

type popover int

const (
	popoverNone popover = iota
	popoverCategory
	popoverSuggestion
)

// categoryTrigger at the end of the draft opens the category picker.
const categoryTrigger = "@"

func popoverFor(text string) popover {
	switch {
	case strings.HasSuffix(text, categoryTrigger):
		return popoverCategory
	case text == "":
		return popoverNone
	default:
		return popoverSuggestion
	}
}
