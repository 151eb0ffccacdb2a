package ui

import (
	"fmt"
	"strings"

	"todoapp/internal/todo"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("My List"))
	b.WriteString("\n\n")
	b.WriteString(m.renderCategoryButton())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch m.activePopover() {
	case popoverCategory:
		b.WriteString(popoverStyle.Render(m.categories.View(m.renderCategoryRow)))
		b.WriteString("\n")
	case popoverSuggestion:
		if m.suggestions.Len() > 0 {
			b.WriteString(popoverStyle.Render(m.suggestions.View(renderSuggestionRow)))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.sectionTitle("Pending", focusTasks))
	b.WriteString("\n")
	if m.tasks.Len() == 0 {
		b.WriteString(mutedStyle.Render("List is empty"))
	} else {
		b.WriteString(m.tasks.View(renderTaskRow))
	}
	b.WriteString("\n")

	if done := m.store.Done(); len(done) > 0 {
		b.WriteString("\n")
		b.WriteString(m.sectionTitle("Done", focusDone))
		b.WriteString("\n")
		b.WriteString(m.renderDoneList(done))
		b.WriteString("\n")
	}

	b.WriteString("\n---\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m Model) sectionTitle(name string, f focusField) string {
	title := sectionStyle.Render(name)
	if m.focus == f {
		title += " " + mutedStyle.Render("(focused)")
	}
	return title
}

func (m Model) renderCategoryButton() string {
	marker := " "
	if m.focus == focusCategory {
		marker = ">"
	}
	return fmt.Sprintf("%s [%s %s ▾]", marker, swatch(m.category), badge(m.category))
}

func (m Model) renderCategoryRow(c todo.Category, highlighted bool) string {
	check := " "
	if c == m.category {
		check = "✓"
	}
	row := fmt.Sprintf("%s %-12s %s", swatch(c), c.Name, check)
	return highlightRow(row, highlighted)
}

func renderSuggestionRow(s string, highlighted bool) string {
	return highlightRow(s, highlighted)
}

func renderTaskRow(t todo.Task, highlighted bool) string {
	row := fmt.Sprintf("%s %s  %s", swatch(t.Category), t.Text, mutedStyle.Render(t.Category.Name))
	return highlightRow(row, highlighted)
}

func (m Model) renderDoneList(done []todo.Task) string {
	rows := make([]string, len(done))
	for i, t := range done {
		cursor := " "
		if m.focus == focusDone && i == m.doneCursor {
			cursor = ">"
		}
		rows[i] = fmt.Sprintf("%s %s  %s", cursor, doneStyle.Render(t.Text), mutedStyle.Render(t.Category.Name))
	}
	return strings.Join(rows, "\n")
}

func highlightRow(row string, highlighted bool) string {
	if highlighted {
		return "> " + highlightStyle.Render(row)
	}
	return "  " + row
}
