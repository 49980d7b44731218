package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"tagfield/internal/tags"
)

// KeyMap exposes the field's effective bindings as bubbles key.Bindings,
// with help text for display in a footer or help overlay.
type KeyMap struct {
	Add           key.Binding
	Remove        key.Binding
	NavigateLeft  key.Binding
	NavigateRight key.Binding
	Paste         key.Binding
	Escape        key.Binding
}

// KeyMap builds the display bindings from the controller's key map, so an
// overridden binding shows up in help text automatically.
func (f TagField) KeyMap() KeyMap {
	return KeyMap{
		Add:           commandBinding(f.ctrl, tags.CommandAdd, "Add tag"),
		Remove:        commandBinding(f.ctrl, tags.CommandRemove, "Remove tag"),
		NavigateLeft:  commandBinding(f.ctrl, tags.CommandNavigateLeft, "Previous tag"),
		NavigateRight: commandBinding(f.ctrl, tags.CommandNavigateRight, "Next tag"),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "Paste tags"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Back to entry"),
		),
	}
}

// ShortHelp returns the bindings as a single footer line.
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Add, m.Remove, m.NavigateLeft, m.NavigateRight, m.Paste}
}

func commandBinding(ctrl *tags.Controller, cmd tags.Command, help string) key.Binding {
	keys := ctrl.Keys(cmd)
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), help),
	)
}
