package ui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tagfield/internal/tags"
)

func newTestField(opts ...tags.Option) TagField {
	return NewTagField(tags.New(opts...))
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runeMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func fieldLabels(f TagField) []string {
	return tags.Labels(f.Tags())
}

func TestNewTagField(t *testing.T) {
	t.Run("NilControllerPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic for nil controller handle")
			}
		}()
		NewTagField(nil)
	})

	t.Run("DefaultValues", func(t *testing.T) {
		f := newTestField()
		if f.Width != 50 {
			t.Errorf("expected default width 50, got %d", f.Width)
		}
		if f.InNavigationMode() {
			t.Error("expected input mode initially")
		}
		if f.FlashIndex() != -1 {
			t.Errorf("expected flashIndex -1, got %d", f.FlashIndex())
		}
	})

	t.Run("Builders", func(t *testing.T) {
		f := newTestField().WithWidth(80).WithPlaceholder("labels...")
		if f.Width != 80 {
			t.Errorf("expected width 80, got %d", f.Width)
		}
	})
}

func TestTagFieldCommit(t *testing.T) {
	t.Run("EnterAddsAndClearsInput", func(t *testing.T) {
		f := newTestField()
		f.SetInputValue("backend")
		f, cmd := f.Update(keyMsg(tea.KeyEnter))
		if got := fieldLabels(f); !reflect.DeepEqual(got, []string{"backend"}) {
			t.Errorf("unexpected tags %v", got)
		}
		if f.InputValue() != "" {
			t.Errorf("expected cleared input, got %q", f.InputValue())
		}
		if cmd == nil {
			t.Fatal("expected a command")
		}
		msg, ok := cmd().(TagsAddedMsg)
		if !ok {
			t.Fatalf("expected TagsAddedMsg, got %T", cmd())
		}
		if !reflect.DeepEqual(msg.Labels, []string{"backend"}) {
			t.Errorf("unexpected labels %v", msg.Labels)
		}
	})

	t.Run("DelimitedTextBecomesBatch", func(t *testing.T) {
		f := newTestField()
		f.SetInputValue("red, blue ,green")
		f, _ = f.Update(keyMsg(tea.KeyEnter))
		if got := fieldLabels(f); !reflect.DeepEqual(got, []string{"red", "blue", "green"}) {
			t.Errorf("unexpected tags %v", got)
		}
	})

	t.Run("EmptyInputIsNoop", func(t *testing.T) {
		f := newTestField()
		f, cmd := f.Update(keyMsg(tea.KeyEnter))
		if len(f.Tags()) != 0 {
			t.Errorf("expected no tags, got %v", fieldLabels(f))
		}
		if cmd != nil {
			t.Error("expected no command")
		}
	})

	t.Run("RejectedTextRetained", func(t *testing.T) {
		f := newTestField(tags.WithDefaultValue(tags.Strings("go")))
		f.SetInputValue("go")
		f, _ = f.Update(keyMsg(tea.KeyEnter))
		if f.InputValue() != "go" {
			t.Errorf("expected input retained on rejection, got %q", f.InputValue())
		}
	})
}

func TestTagFieldDuplicateFlash(t *testing.T) {
	t.Run("DuplicateFlashesExistingTag", func(t *testing.T) {
		f := newTestField(tags.WithDefaultValue(tags.Strings("one", "two")))
		f.SetInputValue("Two")
		f, cmd := f.Update(keyMsg(tea.KeyEnter))
		if f.FlashIndex() != 1 {
			t.Errorf("expected flashIndex 1, got %d", f.FlashIndex())
		}
		if cmd == nil {
			t.Error("expected flash clear command")
		}
	})

	t.Run("FlashClearMsgResets", func(t *testing.T) {
		f := newTestField(tags.WithDefaultValue(tags.Strings("one")))
		f.SetInputValue("one")
		f, _ = f.Update(keyMsg(tea.KeyEnter))
		f, _ = f.Update(tagFlashClearMsg{})
		if f.FlashIndex() != -1 {
			t.Errorf("expected flash cleared, got %d", f.FlashIndex())
		}
	})
}

func TestTagFieldNavigationEntry(t *testing.T) {
	t.Run("BackspaceOnEmptyEntersNavigation", func(t *testing.T) {
		f := newTestField(tags.WithDefaultValue(tags.Strings("a", "b")))
		f, _ = f.Update(keyMsg(tea.KeyBackspace))
		if !f.InNavigationMode() {
			t.Fatal("expected navigation mode")
		}
		if !f.ctrl.IsFocused(1) {
			t.Errorf("expected last tag focused, got %d", f.ctrl.FocusedIndex())
		}
	})

	t.Run("BackspaceWithTextStaysInInput", func(t *testing.T) {
		f := newTestField(tags.WithDefaultValue(tags.Strings("a")))
		f.SetInputValue("xy")
		f, _ = f.Update(keyMsg(tea.KeyBackspace))
		if f.InNavigationMode() {
			t.Error("expected input mode")
		}
	})

	t.Run("NoTagsNoNavigation", func(t *testing.T) {
		f := newTestField()
		f, _ = f.Update(keyMsg(tea.KeyBackspace))
		if f.InNavigationMode() {
			t.Error("expected input mode with no tags")
		}
	})
}

func TestTagFieldNavigationKeys(t *testing.T) {
	enterNav := func(t *testing.T, f TagField) TagField {
		t.Helper()
		f, _ = f.Update(keyMsg(tea.KeyBackspace))
		if !f.InNavigationMode() {
			t.Fatal("expected navigation mode")
		}
		return f
	}

	t.Run("LeftMovesToPreviousTag", func(t *testing.T) {
		f := enterNav(t, newTestField(tags.WithDefaultValue(tags.Strings("a", "b"))))
		f, _ = f.Update(keyMsg(tea.KeyLeft))
		if !f.ctrl.IsFocused(0) {
			t.Errorf("expected focus 0, got %d", f.ctrl.FocusedIndex())
		}
		// Left at the first tag stays put.
		f, _ = f.Update(keyMsg(tea.KeyLeft))
		if !f.ctrl.IsFocused(0) {
			t.Errorf("expected focus to remain 0, got %d", f.ctrl.FocusedIndex())
		}
	})

	t.Run("RightPastLastExitsToInput", func(t *testing.T) {
		f := enterNav(t, newTestField(tags.WithDefaultValue(tags.Strings("a", "b"))))
		f, cmd := f.Update(keyMsg(tea.KeyRight))
		if f.InNavigationMode() {
			t.Error("expected exit to input")
		}
		if cmd == nil {
			t.Fatal("expected NavExitMsg command")
		}
		msg, ok := cmd().(NavExitMsg)
		if !ok || msg.Reason != NavExitRight {
			t.Errorf("expected NavExitRight, got %#v", cmd())
		}
	})

	t.Run("EscReturnsToInput", func(t *testing.T) {
		f := enterNav(t, newTestField(tags.WithDefaultValue(tags.Strings("a"))))
		f, cmd := f.Update(keyMsg(tea.KeyEsc))
		if f.InNavigationMode() {
			t.Error("expected exit to input")
		}
		if msg, ok := cmd().(NavExitMsg); !ok || msg.Reason != NavExitEscape {
			t.Errorf("expected NavExitEscape, got %#v", cmd())
		}
	})

	t.Run("TypingReturnsToInputWithRune", func(t *testing.T) {
		f := enterNav(t, newTestField(tags.WithDefaultValue(tags.Strings("a"))))
		f, _ = f.Update(runeMsg("x"))
		if f.InNavigationMode() {
			t.Error("expected exit to input")
		}
		if f.InputValue() != "x" {
			t.Errorf("expected rune replayed into input, got %q", f.InputValue())
		}
	})

	t.Run("UnmappedKeyLeavesStateUnchanged", func(t *testing.T) {
		f := enterNav(t, newTestField(tags.WithDefaultValue(tags.Strings("a", "b"))))
		before := f.ctrl.FocusedIndex()
		f, _ = f.Update(keyMsg(tea.KeyUp))
		if f.ctrl.FocusedIndex() != before {
			t.Errorf("expected focus unchanged, got %d", f.ctrl.FocusedIndex())
		}
	})
}

func TestTagFieldRemove(t *testing.T) {
	enterNav := func(t *testing.T, f TagField) TagField {
		t.Helper()
		f, _ = f.Update(keyMsg(tea.KeyBackspace))
		if !f.InNavigationMode() {
			t.Fatal("expected navigation mode")
		}
		return f
	}

	t.Run("DeleteRemovesFocusedTag", func(t *testing.T) {
		f := enterNav(t, newTestField(tags.WithDefaultValue(tags.Strings("a", "b", "c"))))
		f, _ = f.Update(keyMsg(tea.KeyLeft)) // focus "b"
		f, cmd := f.Update(keyMsg(tea.KeyDelete))
		if got := fieldLabels(f); !reflect.DeepEqual(got, []string{"a", "c"}) {
			t.Errorf("unexpected tags %v", got)
		}
		msg, ok := cmd().(TagRemovedMsg)
		if !ok {
			t.Fatalf("expected TagRemovedMsg, got %T", cmd())
		}
		if msg.Label != "b" || msg.Index != 1 {
			t.Errorf("unexpected removal %+v", msg)
		}
		// Same index kept; "c" slid into place.
		if !f.ctrl.IsFocused(1) {
			t.Errorf("expected focus 1, got %d", f.ctrl.FocusedIndex())
		}
	})

	t.Run("RemovingLastFocusesPrevious", func(t *testing.T) {
		f := enterNav(t, newTestField(tags.WithDefaultValue(tags.Strings("a", "b"))))
		f, _ = f.Update(keyMsg(tea.KeyBackspace))
		if got := fieldLabels(f); !reflect.DeepEqual(got, []string{"a"}) {
			t.Errorf("unexpected tags %v", got)
		}
		if !f.ctrl.IsFocused(0) {
			t.Errorf("expected focus 0, got %d", f.ctrl.FocusedIndex())
		}
	})

	t.Run("RemovingOnlyTagReturnsToInput", func(t *testing.T) {
		f := enterNav(t, newTestField(tags.WithDefaultValue(tags.Strings("solo"))))
		f, _ = f.Update(keyMsg(tea.KeyBackspace))
		if len(f.Tags()) != 0 {
			t.Errorf("expected empty collection, got %v", fieldLabels(f))
		}
		if f.InNavigationMode() {
			t.Error("expected input mode")
		}
	})
}

func TestTagFieldPaste(t *testing.T) {
	t.Run("PastedTextParsedNotInserted", func(t *testing.T) {
		f := newTestField()
		f, _ = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x, y"), Paste: true})
		if got := fieldLabels(f); !reflect.DeepEqual(got, []string{"x", "y"}) {
			t.Errorf("unexpected tags %v", got)
		}
		if f.InputValue() != "" {
			t.Errorf("expected empty input, got %q", f.InputValue())
		}
	})

	t.Run("EmptyPasteIsNoop", func(t *testing.T) {
		f := newTestField()
		f, cmd := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("  "), Paste: true})
		if len(f.Tags()) != 0 || cmd != nil {
			t.Error("expected no-op for empty paste")
		}
	})
}

func TestTagFieldNonInteractive(t *testing.T) {
	t.Run("AddBlocked", func(t *testing.T) {
		f := newTestField(tags.WithDisabled(true))
		f.SetInputValue("a")
		f, _ = f.Update(keyMsg(tea.KeyEnter))
		if len(f.Tags()) != 0 {
			t.Errorf("expected no tags, got %v", fieldLabels(f))
		}
	})

	t.Run("NavigationEntryBlocked", func(t *testing.T) {
		f := newTestField(
			tags.WithDisabled(true),
			tags.WithDefaultValue(tags.Strings("a")),
		)
		f, _ = f.Update(keyMsg(tea.KeyBackspace))
		if f.InNavigationMode() {
			t.Error("expected navigation blocked")
		}
	})
}

func TestTagFieldCustomKeyMap(t *testing.T) {
	f := newTestField(tags.WithKeyMap(tags.KeyMap{"tab": tags.CommandAdd}))
	f.SetInputValue("a")
	f, _ = f.Update(keyMsg(tea.KeyTab))
	if got := fieldLabels(f); !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("expected tab to add, got %v", got)
	}
}

func TestTagFieldView(t *testing.T) {
	t.Run("RendersAllTags", func(t *testing.T) {
		f := newTestField(tags.WithDefaultValue(tags.Strings("alpha", "beta")))
		view := f.View()
		for _, label := range []string{"alpha", "beta"} {
			if !containsStr(view, label) {
				t.Errorf("view missing %q", label)
			}
		}
	})

	t.Run("WrapsAtWidth", func(t *testing.T) {
		f := newTestField(tags.WithDefaultValue(tags.Strings("one", "two", "three", "four"))).WithWidth(20)
		view := f.View()
		if !containsStr(view, "\n") {
			t.Error("expected wrapped output")
		}
	})
}

func TestTagFieldKeyMapHelp(t *testing.T) {
	f := newTestField()
	km := f.KeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("expected help bindings")
	}
	if keys := km.Add.Keys(); len(keys) != 1 || keys[0] != "enter" {
		t.Errorf("unexpected add keys %v", keys)
	}
	if keys := km.Remove.Keys(); len(keys) != 2 {
		t.Errorf("expected backspace+delete, got %v", keys)
	}
}

func containsStr(haystack, needle string) bool {
	return strings.Contains(haystack, needle)
}
