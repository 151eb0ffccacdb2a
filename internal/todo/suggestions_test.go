package todo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSuggestions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input returns catalog", "", Suggestions()},
		{"common prefix keeps order", "De", Suggestions()},
		{"exact match", "Designer", []string{"Designer"}},
		{"case insensitive", "dESIGN", []string{"Designer", "Design", "Designing interface"}},
		{"substring in the middle", "bus", []string{"Debussy"}},
		{"no match", "milk", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterSuggestions(tt.input))
		})
	}
}

func TestCatalogs(t *testing.T) {
	cats := Categories()
	assert.Len(t, cats, 6)
	assert.Equal(t, "Design", DefaultCategory().Name)

	cats[0].Name = "changed"
	assert.Equal(t, "Design", Categories()[0].Name, "catalog is returned by copy")

	sleep, ok := CategoryByName("Sleep")
	assert.True(t, ok)
	assert.Equal(t, Color{Red: 0.686, Green: 0.322, Blue: 0.871, Alpha: 1}, sleep.Color)

	_, ok = CategoryByName("Gardening")
	assert.False(t, ok)

	assert.Len(t, Suggestions(), 7)
}
