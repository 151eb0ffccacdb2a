package ui

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"todoapp/internal/todo"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245"))
	popoverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
	highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
)

// colorOf converts a stored RGBA color to a terminal hex color. Alpha is
// ignored since terminals have no blending.
func colorOf(c todo.Color) lipgloss.Color {
	return lipgloss.Color(colorful.Color{R: c.Red, G: c.Green, B: c.Blue}.Clamped().Hex())
}

func swatch(c todo.Category) string {
	return lipgloss.NewStyle().Foreground(colorOf(c.Color)).Render("●")
}

func badge(c todo.Category) string {
	return lipgloss.NewStyle().Foreground(colorOf(c.Color)).Render(c.Name)
}
