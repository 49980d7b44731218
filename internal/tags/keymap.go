package tags

import "sort"

// Command is an action the controller can execute in response to a key.
type Command int

const (
	// CommandNone - the key has no mapped action.
	CommandNone Command = iota
	// CommandAdd commits the text-entry contents as a batch of tags.
	CommandAdd
	// CommandRemove removes the focused tag, or reaches into the tag list
	// from an empty text entry.
	CommandRemove
	// CommandNavigateLeft moves focus to the previous interactive tag.
	CommandNavigateLeft
	// CommandNavigateRight moves focus to the next interactive tag, or to
	// the text entry past the last one.
	CommandNavigateRight
)

// String returns the configuration name of the command.
func (c Command) String() string {
	switch c {
	case CommandAdd:
		return "add"
	case CommandRemove:
		return "remove"
	case CommandNavigateLeft:
		return "navigateLeft"
	case CommandNavigateRight:
		return "navigateRight"
	default:
		return "none"
	}
}

// KeyMap maps key names (bubbletea's KeyMsg.String() form, e.g. "enter",
// "backspace", "left") to commands.
type KeyMap map[string]Command

// DefaultKeyMap returns the default bindings: Enter adds, Backspace and
// Delete remove, arrow keys navigate.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"enter":     CommandAdd,
		"backspace": CommandRemove,
		"delete":    CommandRemove,
		"left":      CommandNavigateLeft,
		"right":     CommandNavigateRight,
	}
}

// Resolve returns the command bound to the key, or CommandNone.
func (m KeyMap) Resolve(key string) Command {
	return m[key]
}

// Keys returns the keys bound to a command, sorted for stable help text.
func (m KeyMap) Keys(cmd Command) []string {
	var keys []string
	for k, c := range m {
		if c == cmd {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// merged layers overrides on top of m. Keys the overrides do not mention
// keep their existing binding.
func (m KeyMap) merged(overrides KeyMap) KeyMap {
	out := make(KeyMap, len(m)+len(overrides))
	for k, c := range m {
		out[k] = c
	}
	for k, c := range overrides {
		out[k] = c
	}
	return out
}
