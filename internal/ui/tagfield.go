package ui

import (
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagfield/internal/debug"
	"tagfield/internal/tags"
	"tagfield/internal/ui/theme"
)

// NavExitReason indicates why tag navigation mode was exited.
type NavExitReason int

const (
	// NavExitRight - → pressed past the last tag.
	NavExitRight NavExitReason = iota
	// NavExitEscape - Esc pressed.
	NavExitEscape
	// NavExitTab - Tab pressed.
	NavExitTab
	// NavExitTyping - printable key pressed (Character carries it).
	NavExitTyping
)

// TagsAddedMsg is sent when a batch of candidates was committed.
type TagsAddedMsg struct {
	Labels []string
}

// TagRemovedMsg is sent when a tag is deleted via navigation.
type TagRemovedMsg struct {
	Label string
	Index int
}

// NavExitMsg signals the tag field returned focus to the text entry.
type NavExitMsg struct {
	Reason    NavExitReason
	Character rune // For NavExitTyping: the key that was pressed
}

// tagFlashClearMsg is sent to clear the duplicate flash.
type tagFlashClearMsg struct{}

const flashDuration = 150 * time.Millisecond

// FlashCmd returns a command that clears the duplicate flash after a delay.
func FlashCmd() tea.Cmd {
	return tea.Tick(flashDuration, func(_ time.Time) tea.Msg {
		return tagFlashClearMsg{}
	})
}

// TagField is an embeddable tag input widget. It composes a text entry with
// pill-style tags and routes every mutation through an explicit controller
// handle; the widget itself holds no collection state.
type TagField struct {
	ctrl *tags.Controller

	// Configuration
	Width int // Available width for word wrapping (default 50)

	// State
	input      textinput.Model
	split      tags.Splitter
	focused    bool
	flashIndex int // Index of tag to flash for duplicate (-1 = none)
}

// NewTagField creates a TagField bound to the controller. The handle is
// required; constructing UI elements without one is a programmer error.
func NewTagField(ctrl *tags.Controller) TagField {
	if ctrl == nil {
		panic("ui: NewTagField requires a controller handle; construct one with tags.New")
	}

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Add tag..."
	ti.Width = 20

	return TagField{
		ctrl:       ctrl,
		Width:      50,
		input:      ti,
		split:      tags.NewSplitter(),
		flashIndex: -1,
	}
}

// WithWidth sets the available width for word wrapping.
func (f TagField) WithWidth(w int) TagField {
	f.Width = w
	return f
}

// WithSplitter sets the delimiter splitter for this text entry.
func (f TagField) WithSplitter(s tags.Splitter) TagField {
	f.split = s
	return f
}

// WithPlaceholder sets the text entry placeholder.
func (f TagField) WithPlaceholder(s string) TagField {
	f.input.Placeholder = s
	return f
}

// Init implements tea.Model-like interface.
func (f TagField) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and returns updated state.
func (f TagField) Update(msg tea.Msg) (TagField, tea.Cmd) {
	switch msg := msg.(type) {
	case tagFlashClearMsg:
		f.flashIndex = -1
		return f, nil

	case tea.KeyMsg:
		f.syncRoster()
		if msg.Paste {
			// Pasted text becomes a batch of candidates, never raw
			// insertion into the text entry.
			return f.commitText(string(msg.Runes))
		}
		if f.ctrl.FocusedIndex() >= 0 {
			return f.handleNavigationKey(msg)
		}
		return f.handleInputKey(msg)
	}

	return f, nil
}

func (f TagField) handleInputKey(msg tea.KeyMsg) (TagField, tea.Cmd) {
	switch f.ctrl.Resolve(msg.String()) {
	case tags.CommandAdd:
		return f.commitText(f.input.Value())

	case tags.CommandRemove:
		// Backspacing out of an empty entry reaches into the tag list.
		if f.input.Value() == "" && f.ctrl.EnterTagNavigation() {
			return f, nil
		}
	}

	if msg.String() == "ctrl+v" {
		return f.pasteClipboard()
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

func (f TagField) handleNavigationKey(msg tea.KeyMsg) (TagField, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		f.ctrl.FocusInput()
		return f, func() tea.Msg {
			return NavExitMsg{Reason: NavExitEscape}
		}

	case tea.KeyTab:
		f.ctrl.FocusInput()
		return f, func() tea.Msg {
			return NavExitMsg{Reason: NavExitTab}
		}

	case tea.KeyRunes:
		// Printable key - return to the entry and replay the rune there.
		if len(msg.Runes) > 0 {
			f.ctrl.FocusInput()
			char := msg.Runes[0]
			var cmd tea.Cmd
			f.input, cmd = f.input.Update(msg)
			return f, tea.Batch(cmd, func() tea.Msg {
				return NavExitMsg{Reason: NavExitTyping, Character: char}
			})
		}
	}

	switch f.ctrl.Resolve(msg.String()) {
	case tags.CommandRemove:
		return f.removeFocused()

	case tags.CommandNavigateLeft:
		f.ctrl.ApplyTagCommand(tags.CommandNavigateLeft)
		return f, nil

	case tags.CommandNavigateRight:
		if f.ctrl.ApplyTagCommand(tags.CommandNavigateRight) && f.ctrl.FocusedIndex() < 0 {
			return f, func() tea.Msg {
				return NavExitMsg{Reason: NavExitRight}
			}
		}
		return f, nil
	}

	return f, nil
}

func (f TagField) removeFocused() (TagField, tea.Cmd) {
	index := f.ctrl.FocusedIndex()
	collection := f.ctrl.Tags()
	if index < 0 || index >= len(collection) {
		return f, nil
	}
	label := collection[index].Label()

	if !f.ctrl.ApplyTagCommand(tags.CommandRemove) {
		return f, nil
	}

	// Indices shifted; rebuild the roster before picking the next focus.
	f.syncRoster()
	if n := f.ctrl.Len(); n == 0 {
		f.ctrl.FocusInput()
	} else if index >= n {
		// Was at the last position, highlight the previous tag.
		if !f.ctrl.FocusTag(n - 1) {
			f.ctrl.FocusInput()
		}
	}
	// Otherwise the roster kept the same index; the next tag slid into place.

	return f, func() tea.Msg {
		return TagRemovedMsg{Label: label, Index: index}
	}
}

func (f TagField) commitText(raw string) (TagField, tea.Cmd) {
	batch := f.split.Split(raw)
	if len(batch) == 0 {
		return f, nil
	}

	before := f.ctrl.Tags()
	if f.ctrl.AddTags(batch...) {
		after := f.ctrl.Tags()
		f.input.SetValue("")
		f.syncRoster()
		added := tags.Labels(after[len(before):])
		return f, func() tea.Msg {
			return TagsAddedMsg{Labels: added}
		}
	}

	// Nothing accepted. Flash the existing tag the first duplicate hit.
	if !f.ctrl.NonInteractive() {
		for _, candidate := range batch {
			if i := f.ctrl.IndexOf(candidate); i >= 0 {
				f.flashIndex = i
				return f, FlashCmd()
			}
		}
	}
	return f, nil
}

func (f TagField) pasteClipboard() (TagField, tea.Cmd) {
	text, err := clipboard.ReadAll()
	if err != nil {
		debug.Logf("clipboard read failed: %v", err)
		return f, nil
	}
	return f.commitText(text)
}

func (f TagField) syncRoster() {
	f.ctrl.SetRoster(tags.Roster(f.ctrl.Tags()))
}

// View renders the tags followed by the text entry, word-wrapped to Width.
func (f TagField) View() string {
	var elements []string
	for i, t := range f.ctrl.Tags() {
		state := chipStateNormal
		switch {
		case f.flashIndex == i:
			state = chipStateFlash
		case f.ctrl.IsFocused(i):
			state = chipStateHighlight
		case t.Disabled():
			state = chipStateDisabled
		}
		elements = append(elements, renderPillChip(t.Label(), state))
	}

	// Always show the entry, even during tag navigation, for visual
	// continuity.
	elements = append(elements, f.input.View())

	return f.wrapElements(elements)
}

func (f TagField) wrapElements(elements []string) string {
	if f.Width <= 0 || len(elements) == 0 {
		return strings.Join(elements, " ")
	}

	var lines []string
	var currentLine []string
	currentWidth := 0

	for _, elem := range elements {
		elemWidth := lipgloss.Width(elem)
		spaceNeeded := elemWidth
		if len(currentLine) > 0 {
			spaceNeeded++ // +1 for space separator
		}

		if currentWidth+spaceNeeded > f.Width && len(currentLine) > 0 {
			lines = append(lines, strings.Join(currentLine, " "))
			currentLine = []string{elem}
			currentWidth = elemWidth
		} else {
			currentLine = append(currentLine, elem)
			currentWidth += spaceNeeded
		}
	}

	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " "))
	}

	return strings.Join(lines, "\n")
}

// Focus focuses the tag field's text entry.
func (f *TagField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

// Blur removes focus and exits tag navigation.
func (f *TagField) Blur() {
	f.focused = false
	f.ctrl.FocusInput()
	f.input.Blur()
}

// Focused returns whether the tag field is focused.
func (f TagField) Focused() bool {
	return f.focused
}

// InNavigationMode returns true while a tag holds keyboard interaction.
func (f TagField) InNavigationMode() bool {
	return f.ctrl.FocusedIndex() >= 0
}

// Tags returns the current collection.
func (f TagField) Tags() []tags.Tag {
	return f.ctrl.Tags()
}

// InputValue returns the current entry text (for testing).
func (f TagField) InputValue() string {
	return f.input.Value()
}

// SetInputValue replaces the current entry text.
func (f *TagField) SetInputValue(s string) {
	f.input.SetValue(s)
}

// FlashIndex returns the current flash index (for testing).
func (f TagField) FlashIndex() int {
	return f.flashIndex
}

// Chip visual states for pill rendering
type chipState int

const (
	chipStateNormal chipState = iota
	chipStateHighlight
	chipStateFlash
	chipStateDisabled
)

// Powerline characters for pill-shaped chips
const (
	pillLeft  = "" // Left half-circle (rounded left edge)
	pillRight = "" // Right half-circle (rounded right edge)
)

// renderPillChip renders a label as a pill-shaped chip using powerline glyphs.
// The pill has curved edges and a solid background color for the label text.
func renderPillChip(label string, state chipState) string {
	var bgColor, fgColor lipgloss.TerminalColor

	t := theme.Current()
	switch state {
	case chipStateHighlight:
		bgColor = t.BackgroundSecondary()
		fgColor = t.Text()
	case chipStateFlash:
		bgColor = t.Warning()
		fgColor = t.Text()
	case chipStateDisabled:
		bgColor = t.TextMuted()
		fgColor = t.Background()
	default:
		bgColor = t.Info()
		fgColor = t.Background()
	}

	leftCap := lipgloss.NewStyle().Foreground(bgColor).Render(pillLeft)

	labelStyle := lipgloss.NewStyle().
		Foreground(fgColor).
		Background(bgColor)
	if state == chipStateHighlight || state == chipStateFlash {
		labelStyle = labelStyle.Bold(true)
	}
	labelText := labelStyle.Render(label)

	rightCap := lipgloss.NewStyle().Foreground(bgColor).Render(pillRight)

	return leftCap + labelText + rightCap
}
