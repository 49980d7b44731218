// Package tags implements the tag collection controller: an ordered tag
// collection with validation, batch add/remove, delimiter-based input
// parsing, and roster-driven focus navigation. The package is UI-agnostic;
// the widget in internal/ui adapts it to bubbletea.
package tags

import "strings"

// Controller holds the authoritative tag collection and coordinates every
// mutation. All operations are synchronous: a call either changes nothing
// observable, or performs exactly one collection replacement followed by
// one change notification. The controller assumes single-threaded access.
type Controller struct {
	store store
	nav   Navigator

	maxTags         int
	minTags         int
	allowDuplicates bool
	caseSensitive   bool
	disabled        bool
	readOnly        bool
	parse           ParseFunc
	keys            KeyMap
}

// New constructs a controller. Storage mode is decided here: WithValue
// selects controlled mode, otherwise the controller owns a local copy
// seeded from WithDefaultValue.
func New(opts ...Option) *Controller {
	cfg := settings{keys: DefaultKeyMap()}
	for _, opt := range opts {
		opt(&cfg)
	}

	var st store
	if cfg.get != nil || cfg.set != nil {
		st = &hostStore{get: cfg.get, set: cfg.set, notify: cfg.onChange}
	} else {
		st = &localStore{tags: cfg.initial, notify: cfg.onChange}
	}

	return &Controller{
		store:           st,
		nav:             NewNavigator(),
		maxTags:         cfg.maxTags,
		minTags:         cfg.minTags,
		allowDuplicates: cfg.allowDuplicates,
		caseSensitive:   cfg.caseSensitive,
		disabled:        cfg.disabled,
		readOnly:        cfg.readOnly,
		parse:           cfg.parse,
		keys:            cfg.keys,
	}
}

// Tags returns a copy of the current collection.
func (c *Controller) Tags() []Tag {
	current := c.store.read()
	out := make([]Tag, len(current))
	copy(out, current)
	return out
}

// Len returns the current collection length.
func (c *Controller) Len() int {
	return len(c.store.read())
}

// NonInteractive reports whether disabled or readOnly blocks mutation.
func (c *Controller) NonInteractive() bool {
	return c.disabled || c.readOnly
}

// CaseSensitive reports the duplicate comparison policy.
func (c *Controller) CaseSensitive() bool {
	return c.caseSensitive
}

// Resolve maps a key name to its bound command.
func (c *Controller) Resolve(key string) Command {
	return c.keys.Resolve(key)
}

// Keys returns the key names bound to a command.
func (c *Controller) Keys(cmd Command) []string {
	return c.keys.Keys(cmd)
}

// AddTags validates candidates in order and appends the accepted ones in a
// single atomic replacement. Rejections are silent: a no-op call produces
// no write and no notification. Returns true when the collection changed.
//
// Constraint order: non-interactive and empty input short-circuit first,
// then the maxTags ceiling and minTags floor against the current length,
// then per-candidate duplicate filtering and batch truncation at the
// ceiling. Remaining candidates past the ceiling are discarded, not queued.
func (c *Controller) AddTags(candidates ...any) bool {
	if c.NonInteractive() || len(candidates) == 0 {
		return false
	}

	current := c.store.read()
	if c.maxTags > 0 && len(current) >= c.maxTags {
		return false
	}
	if c.minTags > 0 && len(current) < c.minTags {
		return false
	}

	existing := normalizeSet(current, c.caseSensitive)
	var accepted []Tag
	for _, raw := range candidates {
		raw = trimCandidate(raw)
		if raw == nil {
			continue
		}
		if c.maxTags > 0 && len(current)+len(accepted) >= c.maxTags {
			break
		}
		tag := c.parseCandidate(raw)
		key := Normalize(tag, c.caseSensitive)
		if !c.allowDuplicates {
			if _, dup := existing[key]; dup {
				continue
			}
		}
		accepted = append(accepted, tag)
		existing[key] = struct{}{}
	}

	if len(accepted) == 0 {
		return false
	}

	next := make([]Tag, 0, len(current)+len(accepted))
	next = append(next, current...)
	next = append(next, accepted...)
	c.store.write(next)
	return true
}

// RemoveTag excises the tag at index in a single atomic replacement.
// Out-of-range indexes and non-interactive controllers are silent no-ops.
// Focus after a removal is the caller's decision; indices shift.
func (c *Controller) RemoveTag(index int) bool {
	if c.NonInteractive() {
		return false
	}
	current := c.store.read()
	if index < 0 || index >= len(current) {
		return false
	}
	next := make([]Tag, 0, len(current)-1)
	next = append(next, current[:index]...)
	next = append(next, current[index+1:]...)
	c.store.write(next)
	return true
}

// IndexOf returns the position of the tag whose identity matches the
// candidate under the current normalization policy, or -1.
func (c *Controller) IndexOf(candidate any) int {
	candidate = trimCandidate(candidate)
	if candidate == nil {
		return -1
	}
	key := Normalize(c.parseCandidate(candidate), c.caseSensitive)
	for i, t := range c.store.read() {
		if Normalize(t, c.caseSensitive) == key {
			return i
		}
	}
	return -1
}

// SetRoster hands the navigator the ordered roster for this render pass.
func (c *Controller) SetRoster(entries []RosterEntry) {
	c.nav.SetRoster(entries)
}

// FocusedIndex returns the focused tag index, or -1 for the text entry.
func (c *Controller) FocusedIndex() int {
	return c.nav.FocusedIndex()
}

// IsFocused reports whether the tag at index i holds focus.
func (c *Controller) IsFocused(i int) bool {
	return c.nav.IsFocused(i)
}

// FocusInput returns focus to the text entry.
func (c *Controller) FocusInput() {
	c.nav.FocusInput()
}

// FocusTag moves focus to an interactive tag by index.
func (c *Controller) FocusTag(i int) bool {
	return c.nav.FocusTag(i)
}

// EnterTagNavigation moves focus from an empty text entry onto the last
// interactive tag. No-op when non-interactive or no tag qualifies.
func (c *Controller) EnterTagNavigation() bool {
	if c.NonInteractive() {
		return false
	}
	return c.nav.EnterFromInput()
}

// ApplyTagCommand executes a command while a tag holds focus. Returns true
// when the command changed focus or the collection. Unmapped commands and
// non-interactive controllers leave state unchanged.
func (c *Controller) ApplyTagCommand(cmd Command) bool {
	if c.NonInteractive() {
		return false
	}
	focused := c.nav.FocusedIndex()
	if focused == noFocus {
		return false
	}
	switch cmd {
	case CommandRemove:
		return c.RemoveTag(focused)
	case CommandNavigateLeft:
		return c.nav.NavigateLeft()
	case CommandNavigateRight:
		return c.nav.NavigateRight()
	default:
		return false
	}
}

func (c *Controller) parseCandidate(raw any) Tag {
	if c.parse != nil {
		return c.parse(raw)
	}
	if t, ok := raw.(Tag); ok {
		return t
	}
	return NewTag(raw)
}

// trimCandidate normalizes malformed input to nil: nil candidates and
// blank strings are dropped before validation.
func trimCandidate(raw any) any {
	if raw == nil {
		return nil
	}
	if s, ok := raw.(string); ok {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		return s
	}
	return raw
}
