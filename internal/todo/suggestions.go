package todo

import (
	"strings"

	"golang.org/x/text/cases"
)

var suggestions = []string{
	"Designer",
	"Developer",
	"Debussy",
	"Declarative",
	"Design",
	"Decremendum",
	"Designing interface",
}

func Suggestions() []string {
	return append([]string(nil), suggestions...)
}

// FilterSuggestions keeps catalog entries containing input, ignoring case.
// Catalog order is preserved and empty input matches everything.
func FilterSuggestions(input string) []string {
	if input == "" {
		return Suggestions()
	}
	fold := cases.Fold()
	needle := fold.String(input)
	var out []string
	for _, s := range suggestions {
		if strings.Contains(fold.String(s), needle) {
			out = append(out, s)
		}
	}
	return out
}
