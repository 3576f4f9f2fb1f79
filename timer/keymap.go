package timer

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/slumber/internal/models"
)

type keymap struct {
	start   key.Binding
	stop    key.Binding
	mood    key.Binding
	notes   key.Binding
	save    key.Binding
	discard key.Binding
	cancel  key.Binding
	quit    key.Binding
}

var defaultKeymap = keymap{
	start: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "start"),
	),
	stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	mood: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "mood"),
	),
	notes: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "notes"),
	),
	save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	discard: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "discard"),
	),
	cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// bindings returns the keys that do something in the given status.
func (k keymap) bindings(status models.TimerStatus) []key.Binding {
	switch status {
	case models.Running:
		return []key.Binding{k.stop, k.discard, k.quit}
	case models.Stopped:
		return []key.Binding{k.mood, k.notes, k.save, k.start, k.discard, k.quit}
	default:
		return []key.Binding{k.start, k.quit}
	}
}
