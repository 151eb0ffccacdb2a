package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"todoapp/internal/config"
)

type keyMap struct {
	Quit      key.Binding
	Up        key.Binding
	Down      key.Binding
	InputUp   key.Binding
	InputDown key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
	Delete    key.Binding
	Category  key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
}

// newKeyMap builds bindings from the configured keys. List movement also
// accepts the arrow keys; the text field only reacts to arrows so that
// letters stay typeable.
func newKeyMap(k config.Keymap) keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys(k.Quit), key.WithHelp(k.Quit, "quit")),
		Up:        key.NewBinding(key.WithKeys(k.Up, "up"), key.WithHelp("↑/"+k.Up, "up")),
		Down:      key.NewBinding(key.WithKeys(k.Down, "down"), key.WithHelp("↓/"+k.Down, "down")),
		InputUp:   key.NewBinding(key.WithKeys("up")),
		InputDown: key.NewBinding(key.WithKeys("down")),
		Confirm:   key.NewBinding(key.WithKeys(k.Confirm), key.WithHelp(k.Confirm, "add/select/done")),
		Cancel:    key.NewBinding(key.WithKeys(k.Cancel), key.WithHelp(k.Cancel, "close")),
		Delete:    key.NewBinding(key.WithKeys(k.Delete, "delete"), key.WithHelp(k.Delete, "delete")),
		Category:  key.NewBinding(key.WithKeys(k.Category), key.WithHelp(k.Category, "category")),
		NextFocus: key.NewBinding(key.WithKeys(k.NextFocus), key.WithHelp(k.NextFocus, "next pane")),
		PrevFocus: key.NewBinding(key.WithKeys(k.PrevFocus), key.WithHelp(k.PrevFocus, "prev pane")),
	}
}

func (km keyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Confirm, km.Delete, km.Category, km.NextFocus, km.Quit}
}

func (km keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Confirm, km.Cancel},
		{km.Delete, km.Category},
		{km.NextFocus, km.PrevFocus, km.Quit},
	}
}
