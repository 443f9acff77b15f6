// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Back returns to the previous view or closes the modal.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// NextField moves focus to the next form field.
	NextField key.Binding

	// PrevField moves focus to the previous form field.
	PrevField key.Binding

	// Pick opens the file picker for the focused slot.
	Pick key.Binding

	// Remove clears the focused attachment slot.
	Remove key.Binding

	// Acknowledge toggles the declaration checkbox.
	Acknowledge key.Binding

	// Submit sends the withdrawal request.
	Submit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),
		Pick: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "choose file"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "remove file"),
		),
		Acknowledge: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "submit"),
		),
	}
}

// ShortHelp returns a short list of keybindings for the help line.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Select, k.Back, k.Quit}
}

// FormHelp returns keybindings for the request form view.
func (k *KeyMap) FormHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Acknowledge, k.Submit, k.Back}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
