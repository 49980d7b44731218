package tags

// noFocus means the text-entry surface holds interaction focus.
const noFocus = -1

// RosterEntry describes one rendered tag position for focus navigation.
// The host rebuilds the roster every render pass; entries are ordered by
// position and Index is only valid for that pass.
type RosterEntry struct {
	Index       int
	Interactive bool
}

// Roster builds a navigation roster for a collection. Tags carrying the
// disabled payload field are marked non-interactive.
func Roster(collection []Tag) []RosterEntry {
	out := make([]RosterEntry, len(collection))
	for i, t := range collection {
		out[i] = RosterEntry{Index: i, Interactive: !t.Disabled()}
	}
	return out
}

// Navigator tracks which tag (if any) holds keyboard interaction and
// computes focus transitions over an explicit roster. Navigation never
// touches the collection itself.
type Navigator struct {
	roster []RosterEntry
	focus  int
}

// NewNavigator returns a navigator with focus on the text entry.
func NewNavigator() Navigator {
	return Navigator{focus: noFocus}
}

// SetRoster replaces the roster for the current render pass. If the
// focused index no longer exists, focus falls back to the text entry;
// picking a replacement tag after a removal is the host's decision.
func (n *Navigator) SetRoster(entries []RosterEntry) {
	n.roster = entries
	if n.focus != noFocus && n.position(n.focus) == -1 {
		n.focus = noFocus
	}
}

// FocusedIndex returns the focused tag index, or -1 when the text entry
// holds focus.
func (n *Navigator) FocusedIndex() int {
	return n.focus
}

// IsFocused reports whether the tag at index i holds focus.
func (n *Navigator) IsFocused(i int) bool {
	return n.focus != noFocus && n.focus == i
}

// FocusInput moves focus to the text entry.
func (n *Navigator) FocusInput() {
	n.focus = noFocus
}

// FocusTag moves focus to the tag at index i. Returns false if the index
// is not in the roster or the tag is not interactive.
func (n *Navigator) FocusTag(i int) bool {
	pos := n.position(i)
	if pos == -1 || !n.roster[pos].Interactive {
		return false
	}
	n.focus = i
	return true
}

// NavigateLeft moves focus to the nearest preceding interactive tag.
// Focus stays put when no such sibling exists. Returns true on movement.
func (n *Navigator) NavigateLeft() bool {
	pos := n.position(n.focus)
	if pos == -1 {
		return false
	}
	for p := pos - 1; p >= 0; p-- {
		if n.roster[p].Interactive {
			n.focus = n.roster[p].Index
			return true
		}
	}
	return false
}

// NavigateRight moves focus to the nearest following interactive tag, or
// to the text entry when none exists. Returns true on any transition.
func (n *Navigator) NavigateRight() bool {
	pos := n.position(n.focus)
	if pos == -1 {
		return false
	}
	for p := pos + 1; p < len(n.roster); p++ {
		if n.roster[p].Interactive {
			n.focus = n.roster[p].Index
			return true
		}
	}
	n.focus = noFocus
	return true
}

// EnterFromInput moves focus from the text entry to the last interactive
// tag. Returns false when there is none.
func (n *Navigator) EnterFromInput() bool {
	for p := len(n.roster) - 1; p >= 0; p-- {
		if n.roster[p].Interactive {
			n.focus = n.roster[p].Index
			return true
		}
	}
	return false
}

func (n *Navigator) position(index int) int {
	if index == noFocus {
		return -1
	}
	for p, e := range n.roster {
		if e.Index == index {
			return p
		}
	}
	return -1
}
