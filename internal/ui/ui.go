package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"

	"todoapp/internal/config"
	"todoapp/internal/todo"
)

type focusField int

const (
	focusInput focusField = iota
	focusCategory
	focusSuggestion
	focusTasks
	focusDone
)


type Model struct {
	store *todo.Store
	cfg   config.Config
	keys  keyMap
	help  help.Model
	log   log.FieldLogger

	input    textinput.Model
	category todo.Category

	categories  List[todo.Category]
	suggestions List[string]
	tasks       List[todo.Task]
	doneCursor  int

	// dropdown is the explicitly toggled category picker. dismissed hides the
	// text-derived popover until the draft changes again.
	dropdown  bool
	dismissed bool

	focus     focusField
	lastFocus focusField
	status    string
}

func New(store *todo.Store, cfg config.Config, logger log.FieldLogger) Model {
	if logger == nil {
		logger = log.StandardLogger()
	}
	ti := textinput.New()
	ti.Placeholder = "What's your focus?"
	ti.Width = 40
	ti.Focus()

	category, ok := todo.CategoryByName(cfg.DefaultCategory)
	if !ok {
		category = todo.DefaultCategory()
	}

	m := Model{
		store:       store,
		cfg:         cfg,
		keys:        newKeyMap(cfg.Keys),
		help:        help.New(),
		log:         logger,
		input:       ti,
		category:    category,
		categories:  NewList(todo.Categories()),
		suggestions: NewList(todo.Suggestions()),
		tasks:       NewList(store.Pending()),
		focus:       focusInput,
		lastFocus:   focusInput,
		status:      "Type a task, '@' picks a category, enter adds it.",
	}
	return m
}

func Run(store *todo.Store, cfg config.Config, logger log.FieldLogger, firstLaunch bool) error {
	if logger == nil {
		logger = log.StandardLogger()
	}
	unsubscribe := store.Subscribe(func(c todo.Change) {
		logger.WithFields(log.Fields{
			"op":      c.Op,
			"task":    c.Task.Text,
			"pending": c.Pending,
			"done":    c.Done,
		}).Debug("task list changed")
	})
	defer unsubscribe()

	m := New(store, cfg, logger)
	if firstLaunch {
		m.status = "Welcome! Config written, tasks are saved to " + cfg.DBPath
	}

	program := tea.NewProgram(m)
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Category) {
			return m.toggleDropdown()
		}
		switch m.focus {
		case focusCategory:
			return m.updateCategoryPicker(msg)
		case focusSuggestion:
			return m.updateSuggestionPicker(msg)
		case focusTasks:
			return m.updateTaskList(msg)
		case focusDone:
			return m.updateDoneList(msg)
		default:
			return m.updateInput(msg)
		}
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
		m.help.Width = msg.Width
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// activePopover is the popover currently shown, if any. At most one is visible.
func (m Model) activePopover() popover {
	if m.dropdown {
		return popoverCategory
	}
	if m.dismissed {
		return popoverNone
	}
	return popoverFor(m.input.Value())
}

func (m Model) popoverHasRows() bool {
	switch m.activePopover() {
	case popoverCategory:
		return m.categories.Len() > 0
	case popoverSuggestion:
		return m.suggestions.Len() > 0
	}
	return false
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m.submit()
	case key.Matches(msg, m.keys.InputDown):
		if !m.popoverHasRows() {
			return m.setFocus(focusTasks)
		}
		return m.enterPopover(false)
	case key.Matches(msg, m.keys.InputUp):
		if !m.popoverHasRows() {
			return m, nil
		}
		return m.enterPopover(true)
	case key.Matches(msg, m.keys.Cancel):
		if m.activePopover() != popoverNone {
			return m.closePopover()
		}
		return m, nil
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		return m.cycleFocus(msg)
	}

	before := m.input.Value()
	shown := m.activePopover()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.afterEdit(before, shown)
	return m, cmd
}

// afterEdit re-derives the popover state from a changed draft.
func (m *Model) afterEdit(before string, shown popover) {
	value := m.input.Value()
	if value == before {
		return
	}
	m.dismissed = false
	m.suggestions.SetItems(todo.FilterSuggestions(value))
	now := m.activePopover()
	if now == shown {
		return
	}
	switch now {
	case popoverCategory:
		m.categories.Reset()
	case popoverSuggestion:
		m.suggestions.Reset()
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	t := todo.Task{Text: text, Category: m.category}
	m.store.AddItem(t)
	m.syncLists()
	m.input.Reset()
	m.suggestions.SetItems(todo.Suggestions())
	m.dropdown = false
	m.dismissed = false
	m.status = fmt.Sprintf("Added %q to %s", t.Text, t.Category.Name)
	return m.setFocus(focusTasks)
}

func (m Model) enterPopover(up bool) (tea.Model, tea.Cmd) {
	m.lastFocus = m.focus
	if m.activePopover() == popoverCategory {
		m.focus = focusCategory
		moveHighlight(&m.categories, up)
	} else {
		m.focus = focusSuggestion
		moveHighlight(&m.suggestions, up)
	}
	cmd := m.applyFocus()
	return m, cmd
}

func moveHighlight[T any](l *List[T], up bool) {
	if up {
		l.MoveUp()
		return
	}
	l.MoveDown()
}

func (m Model) toggleDropdown() (tea.Model, tea.Cmd) {
	if m.activePopover() == popoverCategory {
		return m.closePopover()
	}
	if m.focus != focusCategory && m.focus != focusSuggestion {
		m.lastFocus = m.focus
	}
	m.dropdown = true
	m.categories.Reset()
	m.focus = focusCategory
	cmd := m.applyFocus()
	return m, cmd
}

// closePopover hides whichever popover is open. If focus is inside the
// popover it goes back to the control that held it before; otherwise it
// stays where it is.
func (m Model) closePopover() (tea.Model, tea.Cmd) {
	m.dropdown = false
	m.dismissed = true
	m.categories.Reset()
	m.suggestions.Reset()
	if m.focus == focusCategory || m.focus == focusSuggestion {
		return m.restoreFocus()
	}
	return m, nil
}

func (m Model) restoreFocus() (tea.Model, tea.Cmd) {
	f := m.lastFocus
	if f == focusCategory || f == focusSuggestion {
		f = focusInput
	}
	m.lastFocus = focusInput
	return m.setFocus(f)
}

func (m Model) setFocus(f focusField) (tea.Model, tea.Cmd) {
	m.focus = f
	cmd := m.applyFocus()
	return m, cmd
}

func (m *Model) applyFocus() tea.Cmd {
	if m.focus == focusInput {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// tabOrder is the focus cycle; popovers are entered with the arrow keys.
// The done pane is only reachable while it is rendered.
func (m Model) tabOrder() []focusField {
	if len(m.store.Done()) == 0 {
		return []focusField{focusInput, focusTasks}
	}
	return []focusField{focusInput, focusTasks, focusDone}
}

func (m Model) cycleFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := 1
	if key.Matches(msg, m.keys.PrevFocus) {
		step = -1
	}
	order := m.tabOrder()
	idx := 0
	for i, f := range order {
		if f == m.focus {
			idx = i
			break
		}
	}
	return m.setFocus(order[wrapIndex(idx+step, len(order))])
}

func (m Model) updateCategoryPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.categories.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.categories.MoveDown()
	case key.Matches(msg, m.keys.Confirm):
		c, _, ok := m.categories.Confirm()
		if !ok {
			return m, nil
		}
		m.category = c
		m.input.SetValue(strings.ReplaceAll(m.input.Value(), categoryTrigger, " "))
		m.input.CursorEnd()
		m.suggestions.SetItems(todo.FilterSuggestions(m.input.Value()))
		m.status = "Category: " + c.Name
		return m.closePopover()
	case key.Matches(msg, m.keys.Cancel):
		return m.closePopover()
	}
	return m, nil
}

func (m Model) updateSuggestionPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.suggestions.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.suggestions.MoveDown()
	case key.Matches(msg, m.keys.Confirm):
		s, _, ok := m.suggestions.Confirm()
		if !ok {
			return m, nil
		}
		m.input.SetValue(s)
		m.input.CursorEnd()
		m.suggestions.SetItems(todo.FilterSuggestions(s))
		return m.closePopover()
	case key.Matches(msg, m.keys.Cancel):
		return m.closePopover()
	}
	return m, nil
}

func (m Model) updateTaskList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.tasks.MoveUp()
	case key.Matches(msg, m.keys.Down):
		m.tasks.MoveDown()
	case key.Matches(msg, m.keys.Confirm):
		_, i, ok := m.tasks.Confirm()
		if !ok {
			return m, nil
		}
		if err := m.store.MarkAsDone(i); err != nil {
			m.log.WithError(err).Warn("mark done failed")
			m.status = fmt.Sprintf("mark done failed: %v", err)
			return m, nil
		}
		m.tasks.Reset()
		m.syncLists()
		m.status = "Marked task done"
	case key.Matches(msg, m.keys.Delete):
		i, ok := m.tasks.Highlighted()
		if !ok {
			return m, nil
		}
		t := m.tasks.Items()[i]
		if err := m.store.DeleteItem(i); err != nil {
			m.log.WithError(err).Warn("delete failed")
			m.status = fmt.Sprintf("delete failed: %v", err)
			return m, nil
		}
		m.syncLists()
		m.status = fmt.Sprintf("Deleted %q", t.Text)
	case key.Matches(msg, m.keys.Cancel):
		return m.setFocus(focusInput)
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		return m.cycleFocus(msg)
	}
	return m, nil
}

func (m Model) updateDoneList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.store.Done())
	switch {
	case key.Matches(msg, m.keys.Up):
		m.doneCursor = clampCursor(m.doneCursor-1, n)
	case key.Matches(msg, m.keys.Down):
		m.doneCursor = clampCursor(m.doneCursor+1, n)
	case key.Matches(msg, m.keys.Delete):
		if n == 0 {
			return m, nil
		}
		if err := m.store.DeleteDoneItem(m.doneCursor); err != nil {
			m.log.WithError(err).Warn("delete failed")
			m.status = fmt.Sprintf("delete failed: %v", err)
			return m, nil
		}
		m.syncLists()
		m.status = "Deleted done task"
		if len(m.store.Done()) == 0 {
			return m.setFocus(focusTasks)
		}
	case key.Matches(msg, m.keys.Cancel):
		return m.setFocus(focusInput)
	case key.Matches(msg, m.keys.NextFocus), key.Matches(msg, m.keys.PrevFocus):
		return m.cycleFocus(msg)
	}
	return m, nil
}

// syncLists reloads list rows from the store after a mutation.
func (m *Model) syncLists() {
	m.tasks.SetItems(m.store.Pending())
	m.doneCursor = clampCursor(m.doneCursor, len(m.store.Done()))
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}
